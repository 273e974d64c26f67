// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"rural-health-api-server/config"
	"rural-health-api-server/internal/api/routes"
	"rural-health-api-server/internal/database"
	"rural-health-api-server/internal/medreq"
	"rural-health-api-server/internal/s3"
)

func main() {
	// 1. Load configuration (.env first so viper can pick the vars up)
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Connect to MongoDB
	client, db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	// 3. Blob storage for prescription images and audio tips
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	// 4. Seed the doctor directory and sample audio tips
	if err := database.SeedSampleData(db, s3Uploader); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	// 5. Medicine request lifecycle service
	requestService := medreq.NewService(database.NewRequestStore(db), s3Uploader)

	// 6. Router
	router := routes.SetupRouter(cfg, db, s3Uploader, requestService)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
