package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billscan/internal/api/handlers"
	"billscan/internal/api/middleware"
	"billscan/internal/config"
	"billscan/internal/dispatch"
	"billscan/internal/extract"
	"billscan/internal/logger"
	"billscan/internal/notify"
	"billscan/internal/storage"
	"billscan/internal/store"
)

func main() {
	// Initialize logger
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.Store.ProjectID == "" {
		log.Fatal().Msg("GCP_PROJECT_ID is required")
	}

	ctx := context.Background()

	// Service clients are created once per process and reused across
	// notification batches.
	objects, err := storage.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage client")
	}
	defer objects.Close()

	analyzer, err := extract.NewGeminiAnalyzer(ctx, cfg.Model.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create analyzer")
	}

	bills, err := store.NewBigQueryBillRepository(ctx, cfg.Store.ProjectID, cfg.Store.Dataset, cfg.Store.Table)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bill repository")
	}
	defer bills.Close()

	mailer, err := notify.NewGmailMailer(ctx, cfg.Email.Sender, cfg.Email.Recipient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create mailer")
	}

	dispatcher := dispatch.New(objects, analyzer, bills, mailer, logger.WithComponent(log, "dispatcher"))

	eventsHandler := handlers.NewEventsHandler(dispatcher, log)
	billsHandler := handlers.NewBillsHandler(bills, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			eventsHandler.HandleEvent(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/bills", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			billsHandler.ListBills(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(mux),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting notification server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
