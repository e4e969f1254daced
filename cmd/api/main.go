package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-mentorship-backend/config"
	_ "go-mentorship-backend/docs" // Important for Swagger
	v1 "go-mentorship-backend/internal/delivery/http/v1"
	"go-mentorship-backend/internal/repository/sheets"
	"go-mentorship-backend/internal/usecase"
	"go-mentorship-backend/pkg/email"
	"go-mentorship-backend/pkg/logger"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Mentorship Backend API
// @version         1.0
// @description     Backend for the graduate mentor-matching program.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting mentorship backend", "port", cfg.Port)

	// 3. Setup Record Store (Google Sheets)
	store, err := sheets.NewStore(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		logger.Log.Error("Failed to connect to record store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	mentorRepo := sheets.NewMentorRepository(store, cfg.MentorsSheetName)
	selectionRepo := sheets.NewSelectionRepository(store, cfg.SelectionsSheetName)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - match notifications will be skipped")
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	catalogUC := usecase.NewCatalogUsecase(mentorRepo)
	selectionUC := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, emailService, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CatalogUC:   catalogUC,
		SelectionUC: selectionUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
