package model

import (
	"time"
)

type Comment struct {
	Id        int64     `json:"id"`
	PostId    int64     `json:"postId"`
	Body      string    `json:"commentBody"`
	Author    *User     `json:"commentUser"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
