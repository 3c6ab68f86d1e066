package routes

import (
	"log"

	"social-feed-be/app"
	"social-feed-be/config"
	"social-feed-be/db"
	"social-feed-be/util"

	"github.com/gin-gonic/gin"
)

type feedRoutes struct {
	db    db.Database
	pages config.PageConfig
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database, pages config.PageConfig, auth gin.HandlerFunc) {
	routes := feedRoutes{db: database, pages: pages}
	feed := group.Group("/feed", auth)
	feed.GET("", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
}

func (fr *feedRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	page, httpErr := parsePage(c, fr.pages)
	if httpErr != nil {
		return nil, httpErr
	}
	posts, err := app.GetFeed(c, fr.db, page)
	if err != nil {
		log.Println("database error occurred", err)
		return nil, util.BuildDbHTTPErr(err)
	}
	return posts, nil
}
