package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"complaintdesk/backend/internal/analysis"
	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/feed"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	if err := db.AutoMigrate(&models.Complaint{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting ComplaintDesk backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Configuration and dependencies
	cfg := config.Load()
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb, cfg.EventsChannel)

	// 2. External lookup clients and the enrichment service
	sentiment := analysis.NewSentimentClient(cfg.SentimentAPIURL, cfg.SentimentAPIKey, cfg.SentimentTimeout)
	spam := analysis.NewSpamClient(cfg.SpamAPIURL, cfg.SpamAPIKey, cfg.SpamTimeout)
	geo := analysis.NewGeoIPClient(cfg.GeoAPIURL, cfg.GeoTimeout)

	complaints := complaint.NewService(sentiment, spam, geo, s)

	if cfg.TelegramBotToken != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		complaints.SetNotifier(notifier)
		log.Println("Telegram ops notifications enabled.")
	}

	// 3. Live feed hub
	hub := feed.NewHub(s)
	go hub.Run()

	// 4. Gin routing
	r := gin.Default()
	h := handler.NewHandler(complaints, s, hub)

	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints/:id", h.GetComplaint)
	r.GET("/complaints/feed", h.ServeFeed)
	r.GET("/healthz", h.Healthz)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(server.ListenAndServe())
}
