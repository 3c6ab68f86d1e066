package app

import (
	"context"

	"social-feed-be/config"
	"social-feed-be/db"
	"social-feed-be/model"
)

// GetFeed recomputes the public feed for the requested window. The
// aggregation itself (visibility filter, author join, comment counts,
// ordering) runs store-side; this is stateless and safe to call on every
// request.
func GetFeed(ctx context.Context, database db.PostDatabase, page *db.Page) ([]*model.FeedPost, error) {
	posts, err := database.GetFeedPosts(ctx, page)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		// empty page, not null, once the feed runs out
		posts = []*model.FeedPost{}
	}
	return posts, nil
}

// NormalizePage fills pagination defaults and clamps the limit to the
// configured page bound. Offset and limit arrive pre-validated as
// non-negative.
func NormalizePage(offset, limit int, pages config.PageConfig) *db.Page {
	if limit == 0 {
		limit = pages.DefaultLimit
	}
	if limit > pages.MaxLimit {
		limit = pages.MaxLimit
	}
	return &db.Page{Offset: offset, Limit: limit}
}
