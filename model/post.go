package model

import (
	"time"
)

type Post struct {
	Id        int64     `json:"id"`
	Body      string    `json:"postBody"`
	IsPrivate bool      `json:"isPrivate"`
	Author    *User     `json:"postUser"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeedPost is the feed projection of a post: the post itself plus the
// number of comments attached to it.
type FeedPost struct {
	*Post
	TotalComments int64 `json:"totalComments"`
}

// PostWithComments embeds one page of a post's comments.
type PostWithComments struct {
	*Post
	Comments []*Comment `json:"comments"`
}
