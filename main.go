package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/metrics"
	"stayhub-backend/middleware"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	logger := config.NewLogger()

	// Token secret is required; sessions are stateless.
	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		logger.Fatal().Msg("TOKEN_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	logger.Info().Msg("database connection established, migrations applied")

	metrics.Register()

	// Redis is optional; without it the availability cache is a no-op.
	var rdb *redis.Client
	if addr := config.EnvOrDefault("REDIS_ADDR", ""); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.EnvOrDefault("REDIS_PASSWORD", ""),
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, running without availability cache")
			rdb = nil
		}
	}

	pricing := config.LoadPricing()
	cache := services.NewAvailabilityCache(rdb, time.Minute, logger)

	// Services
	authService := services.NewAuthService(db, tokenSecret, 12*time.Hour, logger)
	userService := services.NewUserService(db, logger)
	bookingService := services.NewBookingService(db, pricing, cache, logger)
	roomService := services.NewRoomService(db, cache, logger)
	auditService := services.NewAuditService(db, logger)
	reviewService := services.NewReviewService(db)
	complaintService := services.NewComplaintService(db)
	chatService := services.NewChatService(db)
	travelService := services.NewTravelService(db, pricing)

	// Controllers
	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(authService, userService),
		Booking:   controllers.NewBookingController(bookingService, auditService),
		Room:      controllers.NewRoomController(roomService, auditService),
		Review:    controllers.NewReviewController(reviewService),
		Complaint: controllers.NewComplaintController(complaintService, auditService),
		Chat:      controllers.NewChatController(chatService),
		Travel:    controllers.NewTravelController(travelService),
		User:      controllers.NewUserController(userService, auditService),
		Audit:     controllers.NewAuditController(auditService),
	}

	bookingLimiter := middleware.NewRateLimiter(2, 5)

	router := routes.SetupRouter(logger, authService, bookingLimiter, ctrl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("🚀 server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info().Msg("✅ server stopped gracefully")
}
