package routes

import (
	"log"

	"social-feed-be/app"
	"social-feed-be/config"
	"social-feed-be/db"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/gin-gonic/gin"
)

// pageQuery is the validated shape of ?offset=&limit=. Bounds beyond
// non-negativity are applied by app.NormalizePage.
type pageQuery struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=0"`
}

func parsePage(c *gin.Context, pages config.PageConfig) (*db.Page, *util.HTTPError) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return app.NormalizePage(query.Offset, query.Limit, pages), nil
}

// loadPost resolves :postId into a post. Malformed and unknown ids are both
// a post not-found; not-found always precedes any permission decision.
func loadPost(c *gin.Context, database db.PostDatabase) (*model.Post, *util.HTTPError) {
	id, httpErr := util.ParseResourceId(c.Param("postId"), util.PostNotFoundHTTPErr)
	if httpErr != nil {
		return nil, httpErr
	}
	post, err := database.GetPostById(c, id)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.PostNotFoundHTTPErr
	}
	return post, nil
}

// loadComment resolves :commentId the same way. Cross-post checks stay with
// the caller.
func loadComment(c *gin.Context, database db.CommentDatabase) (*model.Comment, *util.HTTPError) {
	id, httpErr := util.ParseResourceId(c.Param("commentId"), util.CommentNotFoundHTTPErr)
	if httpErr != nil {
		return nil, httpErr
	}
	comment, err := database.GetCommentById(c, id)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil {
		return nil, util.CommentNotFoundHTTPErr
	}
	return comment, nil
}
