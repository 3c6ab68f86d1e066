package routes

import (
	"log"
	"net/http"

	"social-feed-be/app"
	"social-feed-be/db"
	"social-feed-be/middleware"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/gin-gonic/gin"
)

type postRoutes struct {
	db     db.Database
	policy *app.Policy
}

func AddPostRoutes(group *gin.RouterGroup, database db.Database, policy *app.Policy, auth gin.HandlerFunc) {
	routes := postRoutes{db: database, policy: policy}
	posts := group.Group("/posts", auth)
	posts.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	posts.GET("/:postId", util.HandlerWrapper(routes.getPost, &util.HandlerOpts{}))
	posts.PUT("/:postId", util.HandlerWrapper(routes.updatePost, &util.HandlerOpts{}))
	posts.DELETE("/:postId", util.HandlerWrapper(routes.deletePost, &util.HandlerOpts{SuccessStatus: http.StatusNoContent}))
}

type postReq struct {
	PostBody  string `json:"postBody" binding:"required,max=500"`
	IsPrivate bool   `json:"isPrivate"`
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	id, err := pr.db.CreatePost(c, &db.CreatePost{
		CreatorId: middleware.MustGetUser(c).Id,
		Body:      util.XSSSanitize(req.PostBody),
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return pr.fetchPost(c, id)
}

func (pr *postRoutes) getPost(c *gin.Context) (interface{}, *util.HTTPError) {
	post, httpErr := loadPost(c, pr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !pr.policy.CanViewPost(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	return post, nil
}

func (pr *postRoutes) updatePost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	post, httpErr := loadPost(c, pr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !pr.policy.CanMutatePost(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	if err := pr.db.UpdatePost(c, post.Id, &db.UpdatePost{
		Body:      util.XSSSanitize(req.PostBody),
		IsPrivate: req.IsPrivate,
	}); err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return pr.fetchPost(c, post.Id)
}

func (pr *postRoutes) deletePost(c *gin.Context) (interface{}, *util.HTTPError) {
	post, httpErr := loadPost(c, pr.db)
	if httpErr != nil {
		return nil, httpErr
	}
	if !pr.policy.CanMutatePost(middleware.MustGetUser(c), post) {
		return nil, util.ForbiddenHTTPErr
	}
	if err := pr.db.DeletePost(c, post.Id); err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return nil, nil
}

// fetchPost re-reads a post after a write so the response carries the
// store-assigned timestamps and the inlined author profile.
func (pr *postRoutes) fetchPost(c *gin.Context, id int64) (*model.Post, *util.HTTPError) {
	post, err := pr.db.GetPostById(c, id)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.PostNotFoundHTTPErr
	}
	return post, nil
}
