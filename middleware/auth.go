package middleware

import (
	"net/http"
	"strings"

	"social-feed-be/db"
	"social-feed-be/model"
	"social-feed-be/util"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const (
	TokenKey = "authToken"
	UserKey  = "currentUser"
)

type AuthConfig struct {
	// ProfileNotRequired admits identities that verified a token but have
	// not created a local profile yet (profile creation itself).
	ProfileNotRequired bool
}

// Auth verifies the firebase bearer token and resolves the local profile
// into the request context. Every content handler downstream can assume a
// current user; token issuance itself happens outside this service.
func Auth(userDB db.UserDatabase, authClient *auth.Client, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader, ok := c.Request.Header["Authorization"]
		if !ok || len(authorizationHeader) == 0 {
			abortUnauthorized(c, "no authorization header")
			return
		}
		if !strings.HasPrefix(authorizationHeader[0], "Bearer ") || len(authorizationHeader[0]) < 8 {
			abortUnauthorized(c, "incorrectly formatted authorization header")
			return
		}
		token, err := authClient.VerifyIDToken(c, authorizationHeader[0][7:])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(TokenKey, token)

		user, err := userDB.GetUser(c, token.UID)
		if err != nil {
			util.HandleHTTPErrorRes(c, util.BuildDbHTTPErr(err))
			c.Abort()
			return
		}
		if user == nil {
			if config.ProfileNotRequired {
				return
			}
			util.HandleHTTPErrorRes(c, &util.HTTPError{
				Status:  http.StatusForbidden,
				Code:    util.CodeForbidden,
				Message: "must have a user profile",
			})
			c.Abort()
			return
		}
		c.Set(UserKey, user)
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	util.HandleHTTPErrorRes(c, &util.HTTPError{
		Status:  http.StatusUnauthorized,
		Code:    util.CodeForbidden,
		Message: message,
	})
	c.Abort()
}

func MustGetToken(c *gin.Context) *auth.Token {
	token, _ := c.Get(TokenKey)
	return token.(*auth.Token)
}

// MustGetUser returns the resolved current user. Only call it behind Auth
// without ProfileNotRequired.
func MustGetUser(c *gin.Context) *model.User {
	user, _ := c.Get(UserKey)
	return user.(*model.User)
}
