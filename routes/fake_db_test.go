package routes

import (
	"context"
	"database/sql"
	"sort"
	"time"

	db2 "social-feed-be/db"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/go-sql-driver/mysql"
)

// fakeDB is an in-memory db.Database that mirrors the store contract
// (projections, feed aggregation, ordering, cascade delete) closely enough
// to exercise the handler-level properties.
type fakeDB struct {
	users         map[string]*model.User
	posts         map[int64]*model.Post
	comments      map[int64]*model.Comment
	nextPostId    int64
	nextCommentId int64
	now           time.Time

	// forcedErr makes every operation fail, for store-error paths
	forcedErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:         map[string]*model.User{},
		posts:         map[int64]*model.Post{},
		comments:      map[int64]*model.Comment{},
		nextPostId:    1,
		nextCommentId: 1,
		now:           time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so creation order is reflected in timestamps.
func (f *fakeDB) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeDB) CreateUser(_ context.Context, user *model.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for _, existing := range f.users {
		if existing.UserName == user.UserName {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	f.users[user.Id] = &model.User{Id: user.Id, UserName: user.UserName, Profile: user.Profile}
	return nil
}

func (f *fakeDB) GetUser(_ context.Context, id string) (*model.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	copied.Avatar = util.Avatar(copied.Id)
	return &copied, nil
}

func (f *fakeDB) CreatePost(_ context.Context, req *db2.CreatePost) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	id := f.nextPostId
	f.nextPostId++
	now := f.tick()
	f.posts[id] = &model.Post{
		Id:        id,
		Body:      req.Body,
		IsPrivate: req.IsPrivate,
		Author:    f.users[req.CreatorId],
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetPostById(_ context.Context, id int64) (*model.Post, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (f *fakeDB) GetFeedPosts(_ context.Context, page *db2.Page) ([]*model.FeedPost, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var public []*model.Post
	for _, post := range f.posts {
		if !post.IsPrivate {
			public = append(public, post)
		}
	}
	sort.Slice(public, func(i, j int) bool {
		if !public[i].CreatedAt.Equal(public[j].CreatedAt) {
			return public[i].CreatedAt.After(public[j].CreatedAt)
		}
		return public[i].Id > public[j].Id
	})
	var posts []*model.FeedPost
	for i := page.Offset; i < len(public) && len(posts) < page.Limit; i++ {
		count := int64(0)
		for _, comment := range f.comments {
			if comment.PostId == public[i].Id {
				count++
			}
		}
		copied := *public[i]
		posts = append(posts, &model.FeedPost{Post: &copied, TotalComments: count})
	}
	return posts, nil
}

func (f *fakeDB) UpdatePost(_ context.Context, id int64, req *db2.UpdatePost) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	post := f.posts[id]
	post.Body = req.Body
	post.IsPrivate = req.IsPrivate
	post.UpdatedAt = f.tick()
	return nil
}

func (f *fakeDB) DeletePost(_ context.Context, id int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for commentId, comment := range f.comments {
		if comment.PostId == id {
			delete(f.comments, commentId)
		}
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeDB) CreateComment(_ context.Context, req *db2.CreateComment) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	id := f.nextCommentId
	f.nextCommentId++
	now := f.tick()
	f.comments[id] = &model.Comment{
		Id:        id,
		PostId:    req.PostId,
		Body:      req.Body,
		Author:    f.users[req.CreatorId],
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetCommentById(_ context.Context, id int64) (*model.Comment, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	comment, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeDB) GetCommentsForPost(_ context.Context, postId int64, page *db2.Page) ([]*model.Comment, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var all []*model.Comment
	for _, comment := range f.comments {
		if comment.PostId == postId {
			all = append(all, comment)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Id > all[j].Id
	})
	var comments []*model.Comment
	for i := page.Offset; i < len(all) && len(comments) < page.Limit; i++ {
		copied := *all[i]
		comments = append(comments, &copied)
	}
	return comments, nil
}

func (f *fakeDB) UpdateCommentBody(_ context.Context, id int64, body string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	comment := f.comments[id]
	comment.Body = body
	comment.UpdatedAt = f.tick()
	return nil
}

func (f *fakeDB) DeleteComment(_ context.Context, id int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeDB) GetSQLDB() *sql.DB {
	return nil
}

func (f *fakeDB) Close() error {
	return nil
}
