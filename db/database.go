package db

import (
	"context"
	"database/sql"

	"social-feed-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	PostDatabase
	CommentDatabase
	UserDatabase
	GetSQLDB() *sql.DB
	Close() error
}

// Page applies offset/limit pagination to a listing. Offset and Limit are
// assumed normalized by the caller (non-negative, bounded).
type Page struct {
	Offset int
	Limit  int
}

type CreatePost struct {
	CreatorId string
	Body      string
	IsPrivate bool
}

type UpdatePost struct {
	Body      string
	IsPrivate bool
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	// GetPostById returns nil, nil when no post exists
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	// GetFeedPosts builds the public feed: non-private posts with the
	// author's public profile inlined and the comment count attached,
	// ordered by creation time descending
	GetFeedPosts(ctx context.Context, page *Page) ([]*model.FeedPost, error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	// DeletePost removes the post and all of its comments in one transaction
	DeletePost(ctx context.Context, id int64) error
}

type CreateComment struct {
	PostId    int64
	CreatorId string
	Body      string
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	// GetCommentById returns nil, nil when no comment exists
	GetCommentById(ctx context.Context, id int64) (*model.Comment, error)
	// GetCommentsForPost lists a post's comments newest-first
	GetCommentsForPost(ctx context.Context, postId int64, page *Page) ([]*model.Comment, error)
	UpdateCommentBody(ctx context.Context, id int64, body string) error
	DeleteComment(ctx context.Context, id int64) error
}

type UserDatabase interface {
	CreateUser(context.Context, *model.User) error
	// GetUser returns nil, nil when no profile exists for the id
	GetUser(context.Context, string) (*model.User, error)
}
