package main

import (
	"log"
	"os"
	"time"

	httpapi "localbistro/internal/api/http"
	"localbistro/internal/config"
	"localbistro/internal/domain"
	"localbistro/internal/service"
	"localbistro/internal/storage"

	"github.com/joho/godotenv"
)

// Sessions live as long as a visitor would plausibly keep the page
// open; after that carts, booking drafts and lightboxes evaporate.
const sessionTTL = 30 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	var sessions service.SessionStore = storage.NewMemorySessionStore(sessionTTL)
	if os.Getenv("REDIS_HOST") != "" {
		sessions = storage.NewRedisSessionStore(config.MustInitRedis(), sessionTTL)
		log.Println("Using Redis session store")
	}

	var reviews service.ReviewRepository = storage.NewMemoryReviewRepository(domain.SeedReviews)
	if os.Getenv("DB_HOST") != "" {
		db := config.MustInitPostgres()
		defer db.Close()
		repo := storage.NewPostgresReviewRepository(db)
		if err := repo.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		if err := repo.SeedIfEmpty(domain.SeedReviews); err != nil {
			log.Fatal("Failed to seed reviews:", err)
		}
		reviews = repo
		log.Println("Using Postgres review repository")
	}

	var publisher service.HandoffPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("handoffs")
		defer writer.Close()
		publisher = storage.NewKafkaHandoffPublisher(writer)
		log.Println("Publishing handoff events to Kafka")
	}

	phone := config.Getenv("WHATSAPP_PHONE", domain.Bistro.Phone)

	handler := httpapi.NewHandler(
		service.NewMenuService(domain.Menu, sessions, phone, publisher),
		service.NewBookingService(sessions, phone, publisher),
		service.NewGalleryService(domain.Gallery, sessions),
		service.NewReviewService(reviews),
		service.NewInfoService(domain.Bistro, domain.Specials, phone, publisher),
		service.NewQREncoder(),
	)

	addr := ":" + config.Getenv("PORT", "8080")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
