package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/samuel46u5/playstation-billing/internal/config"
	"github.com/samuel46u5/playstation-billing/internal/handler"
	"github.com/samuel46u5/playstation-billing/internal/repository"
	"github.com/samuel46u5/playstation-billing/internal/service"
	"github.com/samuel46u5/playstation-billing/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	rateProfileRepo := repository.NewRateProfileRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	bookingService := service.NewBookingService(bookingRepo, rentalRepo, cfg)
	rentalService := service.NewRentalService(rentalRepo, paymentRepo, rateProfileRepo, bookingRepo, redisClient, cfg)
	verificationService := service.NewVerificationService(redisClient, service.LogCodeSender{}, cfg)

	// Initialize handlers
	rateProfileHandler := handler.NewRateProfileHandler(rateProfileRepo)
	bookingHandler := handler.NewBookingHandler(bookingService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(rateProfileHandler, bookingHandler, rentalHandler, verificationHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetServerReadTimeout(),
		WriteTimeout: cfg.GetServerWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	rateProfileHandler *handler.RateProfileHandler,
	bookingHandler *handler.BookingHandler,
	rentalHandler *handler.RentalHandler,
	verificationHandler *handler.VerificationHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware, response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/rate-profiles", rateProfileHandler.CreateRateProfile).Methods("POST")
	api.HandleFunc("/rate-profiles", rateProfileHandler.ListRateProfiles).Methods("GET")
	api.HandleFunc("/rate-profiles/{profileId}", rateProfileHandler.GetRateProfile).Methods("GET")

	api.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	api.HandleFunc("/bookings/{bookingId}/cancel", bookingHandler.CancelBooking).Methods("POST")
	api.HandleFunc("/bookings/{bookingId}/claim", bookingHandler.ClaimBooking).Methods("POST")
	api.HandleFunc("/resources/{resourceId}/bookings", bookingHandler.ListResourceBookings).Methods("GET")

	api.HandleFunc("/rentals", rentalHandler.StartRental).Methods("POST")
	api.HandleFunc("/rentals/{rentalId}", rentalHandler.GetRental).Methods("GET")
	api.HandleFunc("/rentals/{rentalId}/checkout", rentalHandler.CheckoutRental).Methods("POST")

	api.HandleFunc("/verification/send", verificationHandler.SendCode).Methods("POST")
	api.HandleFunc("/verification/verify", verificationHandler.VerifyCode).Methods("POST")
	api.HandleFunc("/verification/reset", verificationHandler.ResetCode).Methods("POST")
	api.HandleFunc("/verification/status", verificationHandler.Status).Methods("GET")

	return router
}
