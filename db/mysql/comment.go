package mysql

import (
	"context"
	"time"

	db2 "social-feed-be/db"
	"social-feed-be/model"

	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

type flattenedComment struct {
	flattenedAuthor `db:",inline"`
	Id              int64     `db:"id"`
	PostId          int64     `db:"post_id"`
	Body            string    `db:"body"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

var commentColumns = append([]interface{}{
	"c.id",
	"c.post_id",
	"c.body",
	"c.created_at",
	"c.updated_at",
}, authorColumns...)

// CreateComment is a single insert. comment.post_id is the only record of
// post membership, so create needs no companion write to the post row.
func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comment").
		Columns("post_id", "body", "creator_id").
		Values(req.PostId, req.Body, req.CreatorId).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	var comment flattenedComment
	if err := cdb.sess.SQL().
		Select(commentColumns...).
		From("comment AS c").
		Join("person").On("c.creator_id = person.firebase_id").
		Where("c.id = ?", id).
		IteratorContext(ctx).
		One(&comment); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildCommentFromFlattened(&comment), nil
}

func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postId int64, page *db2.Page) ([]*model.Comment, error) {
	var flattenedComments []flattenedComment
	if err := cdb.sess.SQL().
		Select(commentColumns...).
		From("comment AS c").
		Join("person").On("c.creator_id = person.firebase_id").
		Where("c.post_id = ?", postId).
		OrderBy("c.created_at DESC", "c.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, len(flattenedComments))
	for i, flattened := range flattenedComments {
		comments[i] = buildCommentFromFlattened(&flattened)
	}
	return comments, nil
}

func (cdb *CommentDB) UpdateCommentBody(ctx context.Context, id int64, body string) error {
	_, err := cdb.sess.SQL().
		Update("comment").
		Set("body = ?", body).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

// DeleteComment is a single delete; membership disappears with the row.
func (cdb *CommentDB) DeleteComment(ctx context.Context, id int64) error {
	_, err := cdb.sess.SQL().
		DeleteFrom("comment").
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func buildCommentFromFlattened(comment *flattenedComment) *model.Comment {
	return &model.Comment{
		Id:        comment.Id,
		PostId:    comment.PostId,
		Body:      comment.Body,
		Author:    buildAuthorFromFlattened(&comment.flattenedAuthor),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
