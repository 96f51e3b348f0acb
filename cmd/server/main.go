package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"contaspro-backend/internal/ai"
	"contaspro-backend/internal/api"
	"contaspro-backend/internal/config"
	"contaspro-backend/internal/logger"
	"contaspro-backend/internal/service"
	"contaspro-backend/internal/store"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ContasPro API server...", "log_level", cfg.Log.Level)

	st, closeStore, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	ctx := context.Background()

	// Collaborators
	var extractor service.Extractor
	var assistant service.Assistant
	if cfg.Gemini.APIKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", "error", err)
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		extractor = gemini
		assistant = gemini
	} else {
		logger.Warn("No Gemini API key configured; intake and assistant are disabled")
		extractor = ai.Unavailable{}
		assistant = ai.Unavailable{}
	}

	// Services
	userService := service.NewUserService(st)
	if err := userService.EnsureSeeded(ctx); err != nil {
		logger.Error("Failed to seed users", "error", err)
		log.Fatalf("Failed to seed users: %v", err)
	}
	billService := service.NewBillService(st, userService)
	intakeService := service.NewIntakeService(extractor, billService)
	assistantService := service.NewAssistantService(assistant, billService)

	router := api.NewRouter(api.Deps{
		Store:     st,
		Bills:     billService,
		Users:     userService,
		Intake:    intakeService,
		Assistant: assistantService,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Collaborator calls can be slow
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// buildStore creates the configured persistence backend.
func buildStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established")
		return pg, func() { db.Close() }, nil
	default:
		fs, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using file store", "data_dir", cfg.Store.DataDir)
		return fs, func() {}, nil
	}
}
