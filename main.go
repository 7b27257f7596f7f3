package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"photoshare/controllers"
	"photoshare/database"
	"photoshare/initializers"
	"photoshare/middlewares"
	"photoshare/repository"
	"photoshare/routes"
)

func init() {
	initializers.LoadEnvVariables()
	initializers.InitLogger()
}

func main() {
	client, err := database.Connect(os.Getenv("MONGO_URI"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logrus.WithError(err).Error("failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(os.Getenv("DB_NAME"))
	bucket, err := database.NewImageBucket(db)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open image bucket")
	}

	ctl := controllers.New(
		repository.NewUserRepository(db.Collection("users")),
		repository.NewPhotoRepository(db.Collection("photos")),
		bucket,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.ErrorHandler())

	allowedOrigins := []string{"http://127.0.0.1:5500", "http://localhost:3000"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRouter(router, ctl)
	routes.UserRouter(router, ctl)
	routes.PhotoRouter(router, ctl)
	routes.InteractionRouter(router, ctl)
	routes.AggregationRouter(router, ctl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
