package routes

import (
	"log"
	"net/http"

	"social-feed-be/app"
	"social-feed-be/config"
	"social-feed-be/db"
	"social-feed-be/middleware"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/gin-gonic/gin"
)

type commentRoutes struct {
	db     db.Database
	policy *app.Policy
	pages  config.PageConfig
}

func AddCommentRoutes(group *gin.RouterGroup, database db.Database, policy *app.Policy, pages config.PageConfig, auth gin.HandlerFunc) {
	routes := commentRoutes{db: database, policy: policy, pages: pages}
	comments := group.Group("/posts/:postId/comments", auth)
	comments.GET("", util.HandlerWrapper(routes.listComments, &util.HandlerOpts{}))
	comments.POST("", util.HandlerWrapper(routes.createComment, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	comments.GET("/:commentId", util.HandlerWrapper(routes.getComment, &util.HandlerOpts{}))
	comments.PUT("/:commentId", util.HandlerWrapper(routes.updateComment, &util.HandlerOpts{}))
	comments.DELETE("/:commentId", util.HandlerWrapper(routes.deleteComment, &util.HandlerOpts{SuccessStatus: http.StatusNoContent}))
}

type commentReq struct {
	CommentBody string `json:"commentBody" binding:"required,max=500"`
}

func (cr *commentRoutes) listComments(c *gin.Context) (interface{}, *util.HTTPError) {
	post, httpErr := loadPost(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !cr.policy.CanViewPost(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	page, httpErr := parsePage(c, cr.pages)
	if httpErr != nil {
		return nil, httpErr
	}
	comments, err := cr.db.GetCommentsForPost(c, post.Id, page)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	return &model.PostWithComments{Post: post, Comments: comments}, nil
}

func (cr *commentRoutes) createComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	post, httpErr := loadPost(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !cr.policy.CanCreateComment(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	id, err := cr.db.CreateComment(c, &db.CreateComment{
		PostId:    post.Id,
		CreatorId: middleware.MustGetUser(c).Id,
		Body:      util.XSSSanitize(req.CommentBody),
	})
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return cr.fetchComment(c, id)
}

func (cr *commentRoutes) getComment(c *gin.Context) (interface{}, *util.HTTPError) {
	post, httpErr := loadPost(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	comment, httpErr := loadComment(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !cr.policy.CanViewPost(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	return comment, nil
}

func (cr *commentRoutes) updateComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	comment, httpErr := cr.loadCommentForMutation(c)
	if httpErr != nil {
		return nil, httpErr
	}
	if err := cr.db.UpdateCommentBody(c, comment.Id, util.XSSSanitize(req.CommentBody)); err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return cr.fetchComment(c, comment.Id)
}

func (cr *commentRoutes) deleteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	comment, httpErr := cr.loadCommentForMutation(c)
	if httpErr != nil {
		return nil, httpErr
	}
	if err := cr.db.DeleteComment(c, comment.Id); err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return nil, nil
}

// loadCommentForMutation runs the shared update/delete gauntlet: resolve
// both resources (404s first), reject cross-post addressing, then apply the
// comment-mutation policy.
func (cr *commentRoutes) loadCommentForMutation(c *gin.Context) (*model.Comment, *util.HTTPError) {
	post, httpErr := loadPost(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	comment, httpErr := loadComment(c, cr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !app.BelongsToPost(comment, post) {
		return nil, util.ForbiddenHTTPErr
	}
	if !cr.policy.CanMutateComment(middleware.MustGetUser(c), post, comment) {
		return nil, util.ForbiddenHTTPErr
	}
	return comment, nil
}

// fetchComment re-reads a comment after a write to pick up timestamps and
// the inlined author profile.
func (cr *commentRoutes) fetchComment(c *gin.Context, id int64) (*model.Comment, *util.HTTPError) {
	comment, err := cr.db.GetCommentById(c, id)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil {
		return nil, util.CommentNotFoundHTTPErr
	}
	return comment, nil
}
