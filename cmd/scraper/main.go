package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/app"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pipeline"

	"github.com/joho/godotenv"
)

func main() {
	tagOnly := flag.Bool("tag-only", false, "skip the import and only tag untagged listings")
	workers := flag.Int("workers", 0, "tagging workers (defaults to PIPELINE_WORKERS)")
	batch := flag.Int("batch", 100, "listings per tagging batch")
	rps := flag.Int("rps", 0, "max tagging updates per second, 0 for unlimited")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	params := pipeline.TagParams{Workers: cfg.Scheduler.Workers, BatchSize: *batch, RatePerSecond: *rps}
	if *workers > 0 {
		params.Workers = *workers
	}

	var (
		report any
		runErr error
	)
	if *tagOnly {
		report, runErr = c.Refresh.Tag(ctx, params)
	} else {
		report, runErr = c.Refresh.Run(ctx, params)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Printf("failed to encode report: %v", err)
	}
	if runErr != nil {
		log.Fatalf("catalog refresh finished with errors: %v", runErr)
	}
}
