// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"feedback-desk/cmd"
	"feedback-desk/internal/data/repository"
	"feedback-desk/internal/wire"
	"feedback-desk/pkg/database"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
		zap.String("password_hasher", config.Auth.PasswordHasher),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.EnsureSchema(ctx, db, logger); err != nil {
		logger.Fatal("Failed to prepare schema", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	prompt := utils.NewPrompter(os.Stdin, os.Stdout)
	app, err := wire.Wiring(repos, config, prompt, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.Console(ctx, app, prompt, logger); err != nil {
		logger.Error("Console stopped", zap.Error(err))
	}

	logger.Info("Application stopped")
}
