package mysql

import (
	"context"
	"time"

	db2 "social-feed-be/db"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

// flattenedAuthor carries the public profile columns joined off person.
// Private person columns are never part of any select.
type flattenedAuthor struct {
	CreatorId       string `db:"creator_id"`
	CreatorUserName string `db:"user_name"`
	CreatorProfile  string `db:"profile"`
}

type flattenedPost struct {
	flattenedAuthor `db:",inline"`
	Id              int64     `db:"id"`
	Body            string    `db:"body"`
	IsPrivate       bool      `db:"is_private"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type flattenedFeedPost struct {
	flattenedPost `db:",inline"`
	TotalComments int64 `db:"total_comments"`
}

var authorColumns = []interface{}{
	"person.firebase_id AS creator_id",
	"person.user_name",
	"person.profile",
}

var postColumns = append([]interface{}{
	"p.id",
	"p.body",
	"p.is_private",
	"p.created_at",
	"p.updated_at",
}, authorColumns...)

var feedColumns = append(append([]interface{}{}, postColumns...),
	db.Raw("COUNT(c.id) AS total_comments"))

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("body", "is_private", "creator_id").
		Values(req.Body, req.IsPrivate, req.CreatorId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post flattenedPost
	if err := pdb.sess.SQL().
		Select(postColumns...).
		From("post AS p").
		Join("person").On("p.creator_id = person.firebase_id").
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&post), nil
}

// GetFeedPosts runs the feed aggregation: public posts only, author profile
// inlined, comment count per post, newest first.
func (pdb *PostDB) GetFeedPosts(ctx context.Context, page *db2.Page) ([]*model.FeedPost, error) {
	var flattenedPosts []flattenedFeedPost
	if err := pdb.sess.SQL().
		Select(feedColumns...).
		From("post AS p").
		Join("person").On("p.creator_id = person.firebase_id").
		LeftJoin("comment AS c").On("c.post_id = p.id").
		Where("p.is_private = ?", false).
		GroupBy("p.id", "person.firebase_id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		IteratorContext(ctx).
		All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.FeedPost, len(flattenedPosts))
	for i, flattened := range flattenedPosts {
		posts[i] = &model.FeedPost{
			Post:          buildPostFromFlattened(&flattened.flattenedPost),
			TotalComments: flattened.TotalComments,
		}
	}
	return posts, nil
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	_, err := pdb.sess.SQL().
		Update("post").
		Set("body = ?, is_private = ?", req.Body, req.IsPrivate).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

// DeletePost removes the post's comments and the post itself in one
// transaction so no orphaned comments survive a partial failure.
func (pdb *PostDB) DeletePost(ctx context.Context, id int64) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			DeleteFrom("comment").
			Where("post_id = ?", id).
			ExecContext(ctx); err != nil {
			return err
		}
		_, err := sess.SQL().
			DeleteFrom("post").
			Where("id = ?", id).
			ExecContext(ctx)
		return err
	}, nil)
}

func buildPostFromFlattened(post *flattenedPost) *model.Post {
	return &model.Post{
		Id:        post.Id,
		Body:      post.Body,
		IsPrivate: post.IsPrivate,
		Author:    buildAuthorFromFlattened(&post.flattenedAuthor),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func buildAuthorFromFlattened(author *flattenedAuthor) *model.User {
	return &model.User{
		Id:       author.CreatorId,
		UserName: author.CreatorUserName,
		Profile:  author.CreatorProfile,
		Avatar:   util.Avatar(author.CreatorId),
	}
}
