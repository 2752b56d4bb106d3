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
	"github.com/rs/zerolog"

	"roomservice/config"
	"roomservice/controllers"
	"roomservice/metrics"
	"roomservice/realtime"
	"roomservice/routes"
	"roomservice/services"
)

const sessionTTL = 24 * time.Hour

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign dashboard tokens.")
	}

	// The assistant degrades to a fixed fallback without a key, so this is a
	// warning rather than a fatal.
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is not set; guest chat will answer with the fallback message only.")
	} else {
		log.Println("✅ GEMINI_API_KEY detected.")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	redisClient := config.NewRedisClient()
	if err := config.PingRedis(context.Background(), redisClient); err != nil {
		log.Fatalf("❌ Redis connect failed: %v", err)
	}
	log.Println("✅ Redis connection established.")

	// Change bus: NATS when configured, in-process otherwise.
	var bus realtime.Bus
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		natsBus, err := realtime.NewNATSBus(natsURL)
		if err != nil {
			log.Fatalf("❌ NATS connect failed: %v", err)
		}
		defer natsBus.Close()
		bus = natsBus
		log.Println("✅ NATS connection established.")
	} else {
		bus = realtime.NewMemoryBus()
		log.Println("⚠️  NATS_URL not set; using in-process change bus (single instance only).")
	}

	metrics.Register()

	// Initialize services
	sessionService := services.NewSessionService(redisClient, sessionTTL)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, bus)
	hotelService := services.NewHotelService(db)
	chatService := services.NewChatService(geminiKey, os.Getenv("CHAT_ENDPOINT"))

	// Initialize controllers
	guestController := controllers.NewGuestController(sessionService, catalogService, chatService)
	cartController := controllers.NewCartController(sessionService, orderService, catalogService)
	adminController := controllers.NewAdminController(orderService, hotelService)
	superController := controllers.NewSuperController(hotelService, orderService)
	authController := controllers.NewAuthController(
		hotelService,
		jwtSecret,
		os.Getenv("SUPER_ADMIN_USER"),
		os.Getenv("SUPER_ADMIN_PASS"),
	)

	// Build router
	router := routes.SetupRouter(
		guestController,
		cartController,
		adminController,
		superController,
		authController,
		bus,
		logger,
		jwtSecret,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts; WriteTimeout stays 0 so SSE streams are not cut
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
