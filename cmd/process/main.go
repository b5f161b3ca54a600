package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"billscan/internal/config"
	"billscan/internal/dispatch"
	"billscan/internal/extract"
	"billscan/internal/logger"
	"billscan/internal/notify"
	"billscan/internal/storage"
	"billscan/internal/store"
)

func main() {
	// Initialize structured logger
	log := logger.New()

	// Parse CLI flags
	bucket := flag.String("bucket", "", "Storage bucket holding the bill")
	object := flag.String("object", "", "Object key of the bill (percent-encoded, as delivered in notifications)")
	flag.Parse()

	if *bucket == "" || *object == "" {
		log.Fatal().Msg("Error: --bucket and --object are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.Store.ProjectID == "" {
		log.Fatal().Msg("GCP_PROJECT_ID is required")
	}

	// Create context with timeout so the CLI doesn't hang
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

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

	dispatcher := dispatch.New(objects, analyzer, bills, mailer, log)

	log.Info().Str("bucket", *bucket).Str("object", *object).Msg("Processing bill")

	results := dispatcher.Process(ctx, dispatch.Event{Records: []dispatch.Notification{
		{Bucket: *bucket, Key: *object},
	}})

	res := results[0]
	if res.State == dispatch.StateFailed {
		log.Error().Err(res.Err).Msg("Processing failed")
		os.Exit(1)
	}

	fmt.Printf("Bill %s processed successfully.\n", res.BillID)
}
