package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samuel46u5/playstation-billing/internal/config"
	"github.com/samuel46u5/playstation-billing/internal/repository"

	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	log.Println("Starting rental scheduler...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	bookingRepo := repository.NewBookingRepository(db)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Schedule tasks
	setupCronJobs(c, cfg, bookingRepo)

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, bookingRepo repository.BookingRepository) {
	// Every 5 minutes: close out bookings whose interval has elapsed
	_, err := c.AddFunc("0 */5 * * * *", func() {
		completeElapsedBookings(bookingRepo)
	})
	if err != nil {
		log.Printf("Error scheduling elapsed booking job: %v", err)
	}

	// Every 5 minutes: flag bookings nobody showed up for
	_, err = c.AddFunc("0 */5 * * * *", func() {
		markNoShowBookings(bookingRepo, cfg.GetNoShowGrace())
	})
	if err != nil {
		log.Printf("Error scheduling no-show job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}

// completeElapsedBookings moves active bookings whose end time has passed
// to completed. Completed intervals are immutable from then on.
func completeElapsedBookings(bookingRepo repository.BookingRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := bookingRepo.CompleteElapsed(ctx, time.Now())
	if err != nil {
		log.Printf("Failed to complete elapsed bookings: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Completed %d elapsed bookings", count)
	}
}

// markNoShowBookings flags bookings that stayed unclaimed past the grace
// period after their start.
func markNoShowBookings(bookingRepo repository.BookingRepository, grace time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := bookingRepo.MarkNoShows(ctx, time.Now().Add(-grace))
	if err != nil {
		log.Printf("Failed to mark no-show bookings: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Marked %d bookings as no-show", count)
	}
}
