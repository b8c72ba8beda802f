package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/escapegenie/api/internal/config"
	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/handler"
	"github.com/escapegenie/api/internal/middleware"
	"github.com/escapegenie/api/internal/nlp"
	"github.com/escapegenie/api/internal/places"
	"github.com/escapegenie/api/internal/repository"
	"github.com/escapegenie/api/internal/service"
	"github.com/escapegenie/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.New(database.Config{URL: cfg.Database.URL})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database")

	// Initialize JWT service. Validate() requires a real secret in
	// production; the fallback only ever applies to local development.
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		slog.Warn("JWT_SECRET not set, using insecure development secret")
		jwtSecret = "dev-secret-change-me"
	}
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         jwtSecret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	destinationRepo := repository.NewDestinationRepository(db.Pool())
	landmarkRepo := repository.NewLandmarkRepository(db.Pool())
	userRepo := repository.NewUserRepository(db.Pool())
	savedRepo := repository.NewSavedRepository(db.Pool())
	reviewRepo := repository.NewReviewRepository(db.Pool())

	// External clients. The places client degrades to curated data when no
	// API key is configured; the language model loads lazily on first use.
	placesClient := places.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL)
	if !placesClient.Enabled() {
		slog.Warn("no places API key configured, venue listings will be curated-only")
	}
	extractor := nlp.NewExtractor()

	// Initialize services
	chatService := service.NewChatService(service.ChatServiceConfig{
		Destinations: destinationRepo,
		Extractor:    extractor,
	})
	venueService := service.NewVenueService(service.VenueServiceConfig{
		Landmarks: landmarkRepo,
		Places:    placesClient,
		Logger:    logger,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		Users:  userRepo,
		Tokens: jwtService,
	})
	savedService := service.NewSavedService(savedRepo)
	reviewService := service.NewReviewService(reviewRepo)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	venueHandler := handler.NewVenueHandler(venueService)
	authHandler := handler.NewAuthHandler(authService)
	savedHandler := handler.NewSavedHandler(savedService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	healthHandler := handler.NewHealthHandler(db)

	// Rate limiter shared by all routes
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
	defer rateLimiter.Stop()

	authMiddleware := middleware.Auth(jwtService)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /api/chat", chatHandler.Chat)
	mux.HandleFunc("POST /api/venues", venueHandler.Venues)

	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)

	mux.Handle("GET /api/saved", authMiddleware(http.HandlerFunc(savedHandler.List)))
	mux.Handle("POST /api/saved", authMiddleware(http.HandlerFunc(savedHandler.Save)))
	mux.Handle("DELETE /api/saved/{destinationId}", authMiddleware(http.HandlerFunc(savedHandler.Remove)))

	mux.HandleFunc("GET /api/reviews/{destinationId}", reviewHandler.ListByDestination)
	mux.Handle("POST /api/reviews", authMiddleware(http.HandlerFunc(reviewHandler.Create)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
