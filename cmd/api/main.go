package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"quickcourt/internal/config"
	"quickcourt/internal/database"
	"quickcourt/internal/middleware"
	"quickcourt/internal/modules/auth"
	"quickcourt/internal/modules/booking"
	"quickcourt/internal/modules/catalog"
	"quickcourt/internal/modules/notification"
	"quickcourt/internal/modules/review"
	jwtsvc "quickcourt/internal/pkg/jwt"
	"quickcourt/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedDemoData(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository()

	j := jwtsvc.New(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	hub := notification.NewHub()
	defer hub.Close()
	mailer := notification.NewDevMailer(cfg.DevMailEnabled, hub)
	notificationHandler := notification.NewHandler(hub)

	authService := auth.NewService(userRepo, sessionRepo, j, mailer)
	if err := authService.Restore(context.Background()); err != nil {
		log.Printf("session restore failed: %v", err)
	}
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	bookingService := booking.NewService(bookingRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		notificationHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
