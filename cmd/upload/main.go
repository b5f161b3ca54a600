package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"billscan/internal/config"
	"billscan/internal/logger"
	"billscan/internal/storage"
)

func main() {
	log := logger.New()

	file := flag.String("file", "", "Local bill file to upload (PDF or image)")
	bucket := flag.String("bucket", "", "Destination bucket (defaults to GCS_BUCKET)")
	object := flag.String("object", "", "Object name (defaults to the file's base name)")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	dest := *bucket
	if dest == "" {
		dest = cfg.GCS.Bucket
	}
	if dest == "" {
		log.Fatal().Msg("Error: no bucket configured; pass --bucket or set GCS_BUCKET")
	}

	name := *object
	if name == "" {
		name = filepath.Base(*file)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	objects, err := storage.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage client")
	}
	defer objects.Close()

	log.Info().Str("bucket", dest).Str("object", name).Msg("Uploading bill")

	if err := objects.Upload(ctx, dest, name, *file); err != nil {
		log.Fatal().Err(err).Msg("Upload failed")
	}

	fmt.Printf("Uploaded %s to gs://%s/%s\n", *file, dest, name)
}
