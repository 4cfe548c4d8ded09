package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"nexus/internal/config"
	"nexus/internal/middleware"
	"nexus/internal/modules/ai"
	"nexus/internal/modules/composer"
	"nexus/internal/modules/feed"
	"nexus/internal/modules/notification"
	"nexus/internal/modules/users"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is empty; moderation will fail open")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatal(err)
	}

	hub := notification.NewHub()
	notifier := notification.NewService(hub, cfg.ToastBuffer)
	feedStore := feed.NewStore(feed.SeedPosts())
	userService := users.NewService()
	aiService := ai.NewService(client, cfg.GeminiFlashModel, cfg.GeminiProModel)
	composerService := composer.NewService(aiService, feedStore, notifier, userService, cfg.UploadTick)

	composerHandler := composer.NewHandler(composerService)
	feedHandler := feed.NewHandler(feedStore)
	userHandler := users.NewHandler(userService)
	aiHandler := ai.NewHandler(aiService)
	notificationHandler := notification.NewHandler(notifier, hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		composerHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)
		userHandler.RegisterRoutes(v1)
		aiHandler.RegisterRoutes(v1)
		notificationHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
