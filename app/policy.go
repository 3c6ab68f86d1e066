package app

import (
	"social-feed-be/model"
)

// Policy holds the pure access-control rules. Every decision is a function
// of the resource and the requester only; denial vs. not-found translation
// stays in the routes.
type Policy struct {
	// CommentAuthorOnly switches comment mutation from the parent post's
	// visibility rule (the shipped behavior) to comment authorship.
	CommentAuthorOnly bool
}

// CanViewPost allows everyone on public posts and only the owner on
// private ones.
func (p *Policy) CanViewPost(requester *model.User, post *model.Post) bool {
	return !post.IsPrivate || post.Author.Id == requester.Id
}

// CanMutatePost is the single ownership rule for post update and delete.
func (p *Policy) CanMutatePost(requester *model.User, post *model.Post) bool {
	return post.Author.Id == requester.Id
}

// CanCreateComment: you can comment anywhere you can read.
func (p *Policy) CanCreateComment(requester *model.User, post *model.Post) bool {
	return p.CanViewPost(requester, post)
}

// CanMutateComment decides comment update/delete. The default rule gates on
// the parent post's visibility, not on who wrote the comment.
func (p *Policy) CanMutateComment(requester *model.User, post *model.Post, comment *model.Comment) bool {
	if p.CommentAuthorOnly {
		return comment.Author.Id == requester.Id
	}
	return p.CanViewPost(requester, post)
}

// BelongsToPost reports whether the comment actually hangs off the post it
// is being addressed through. A mismatch is a permission violation, not a
// not-found.
func BelongsToPost(comment *model.Comment, post *model.Post) bool {
	return comment.PostId == post.Id
}
