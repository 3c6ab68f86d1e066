package routes

import (
	"log"
	"net/http"

	"social-feed-be/db"
	"social-feed-be/middleware"
	"social-feed-be/model"
	"social-feed-be/util"

	"github.com/gin-gonic/gin"
)

type userRoutes struct {
	db db.Database
}

// AddUserRoutes registers local-profile management. authNoProfile admits
// verified tokens without a profile row yet, since that is what PUT creates.
func AddUserRoutes(group *gin.RouterGroup, database db.Database, auth, authNoProfile gin.HandlerFunc) {
	routes := userRoutes{db: database}
	users := group.Group("/users")
	users.PUT("", authNoProfile, util.HandlerWrapper(routes.createUser, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	users.GET("/me", auth, util.HandlerWrapper(routes.getMe, &util.HandlerOpts{}))
}

type createUserReq struct {
	UserName string `json:"userName" binding:"required,min=3,max=32"`
	Profile  string `json:"profile" binding:"max=255"`
}

func (ur *userRoutes) createUser(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	user := &model.User{
		Id:       middleware.MustGetToken(c).UID,
		UserName: req.UserName,
		Profile:  util.XSSSanitize(req.Profile),
	}
	if err := ur.db.CreateUser(c, user); err != nil {
		if db.IsDupKeyErr(err) {
			return nil, &util.HTTPError{
				Status:  http.StatusConflict,
				Code:    util.CodeValidation,
				Message: "user name already taken",
			}
		}
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	user.Avatar = util.Avatar(user.Id)
	return user, nil
}

func (ur *userRoutes) getMe(c *gin.Context) (interface{}, *util.HTTPError) {
	return middleware.MustGetUser(c), nil
}
