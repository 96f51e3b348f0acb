package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"contaspro-backend/internal/config"
	"contaspro-backend/internal/jobs"
	"contaspro-backend/internal/logger"
	"contaspro-backend/internal/notify"
	"contaspro-backend/internal/scheduler"
	"contaspro-backend/internal/store"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-due-tomorrow-reminders', 'all')")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ContasPro reminder runner...", "log_level", cfg.Log.Level)

	st, closeStore, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	channel := buildChannel(cfg)

	jobRunner := jobs.NewJobRunner(st, channel, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Reminder scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down reminder scheduler...")
	cronScheduler.Stop()
	logger.Info("Reminder scheduler stopped. Goodbye!")
}

// buildChannel creates the configured delivery channel. Returns nil when
// the channel cannot be initialized; reminder jobs then no-op instead of
// marking bills that were never dispatched.
func buildChannel(cfg *config.Config) notify.Channel {
	switch cfg.Notify.Channel {
	case "email":
		sg := cfg.Notify.SendGrid
		logger.Info("Using SendGrid email channel", "to", sg.ToEmail)
		return notify.NewEmailChannel(sg.APIKey, sg.FromEmail, sg.FromName, sg.ToEmail, sg.ToName)
	case "push":
		channel, err := notify.NewPushChannel(context.Background(),
			cfg.Notify.FCM.CredentialsFile, cfg.Notify.FCM.DeviceTokens)
		if err != nil {
			logger.Error("Failed to initialize push channel; reminders disabled", "error", err)
			return nil
		}
		logger.Info("Using FCM push channel", "devices", len(cfg.Notify.FCM.DeviceTokens))
		return channel
	default:
		return notify.NewLogChannel()
	}
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-due-tomorrow-reminders":
		jobRunner.SendDueTomorrowReminders()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-due-tomorrow-reminders\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
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
