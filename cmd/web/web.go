package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"social-feed-be/app"
	"social-feed-be/config"
	"social-feed-be/db/mysql"
	"social-feed-be/middleware"
	"social-feed-be/routes"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading configuration", err)
	}

	database, err := mysql.GetDatabase(cfg)
	if err != nil {
		log.Fatal("Received err when attempting to connect to DB", err)
	}
	defer database.Close()

	err = configureFirebaseCredentials()
	if err != nil {
		log.Fatal("an error occurred while configuring firebase credentials", err)
	}
	fbApp, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		log.Fatalf("error initializing firebase: %v\n", err)
	}
	authClient, err := fbApp.Auth(context.Background())
	if err != nil {
		log.Fatal("error initializing auth client", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Origins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	policy := &app.Policy{CommentAuthorOnly: cfg.Policy.CommentAuthorOnly}
	auth := middleware.Auth(database, authClient, &middleware.AuthConfig{})
	authNoProfile := middleware.Auth(database, authClient, &middleware.AuthConfig{ProfileNotRequired: true})

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddUserRoutes(&r.RouterGroup, database, auth, authNoProfile)
	routes.AddFeedRoutes(&r.RouterGroup, database, cfg.Pages, auth)
	routes.AddPostRoutes(&r.RouterGroup, database, policy, auth)
	routes.AddCommentRoutes(&r.RouterGroup, database, policy, cfg.Pages, auth)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error when attempting to run web server", err)
	}
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Printf("Credentials path detected in env. Expecting credentials to be at %v\n", credentialsPath)
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Println("Credentials JSON string detected in env.")
		err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400)
		if err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		err = os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile)
		if err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
