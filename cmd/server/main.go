package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgo/cardvault/api/internal/config"
	"github.com/forgo/cardvault/api/internal/database"
	"github.com/forgo/cardvault/api/internal/handler"
	"github.com/forgo/cardvault/api/internal/middleware"
	"github.com/forgo/cardvault/api/internal/repository"
	"github.com/forgo/cardvault/api/internal/service"
	"github.com/forgo/cardvault/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; environment variables win
	_ = godotenv.Load()

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
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	cardRepo := repository.NewCardRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)

	// Initialize services
	cardService := service.NewCardService(service.CardServiceConfig{
		Repo: cardRepo,
	})

	collectionService := service.NewCollectionService(service.CollectionServiceConfig{
		Repo:     collectionRepo,
		CardRepo: cardRepo,
	})

	// Initialize handlers
	cardHandler := handler.NewCardHandler(cardService)
	collectionHandler := handler.NewCollectionHandler(collectionService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	authMiddleware := middleware.Auth(jwtService)

	// Card endpoints - reads are public, writes require auth
	mux.HandleFunc("GET /v1/cards", cardHandler.List)
	mux.HandleFunc("GET /v1/cards/{cardId}", cardHandler.Get)
	mux.Handle("POST /v1/cards", authMiddleware(http.HandlerFunc(cardHandler.Create)))
	mux.Handle("PUT /v1/cards/{cardId}", authMiddleware(http.HandlerFunc(cardHandler.Update)))
	mux.Handle("DELETE /v1/cards/{cardId}", authMiddleware(http.HandlerFunc(cardHandler.Delete)))

	// Collection endpoints - reads are public, writes require auth
	mux.HandleFunc("GET /v1/collections", collectionHandler.List)
	mux.HandleFunc("GET /v1/collections/{collectionId}", collectionHandler.Get)
	mux.Handle("POST /v1/collections", authMiddleware(http.HandlerFunc(collectionHandler.Create)))
	mux.Handle("PUT /v1/collections/{collectionId}", authMiddleware(http.HandlerFunc(collectionHandler.Update)))
	mux.Handle("DELETE /v1/collections/{collectionId}", authMiddleware(http.HandlerFunc(collectionHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
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
