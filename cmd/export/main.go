package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"factguard/client"
	"factguard/config"
	"factguard/events"
	"factguard/history"
	"factguard/storage"
)

func main() {
	// Parse command-line flags
	out := flag.String("out", "history.csv", "Output file, '-' for stdout (ignored when S3_BUCKET is set)")
	query := flag.String("q", "", "Only export headlines containing this text")
	follow := flag.Bool("follow", false, "Stream analysis events from Kafka as CSV rows instead of exporting history")
	flag.Parse()

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *follow {
		err = followEvents(ctx, cfg, *out)
	} else {
		err = exportHistory(ctx, cfg, *out, *query)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// exportHistory writes the backend history as CSV to S3 or to a local file
func exportHistory(ctx context.Context, cfg *config.Config, out, query string) error {
	backend := client.NewClient(cfg.BackendURL, nil)
	entries, err := backend.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}
	entries = history.Filter(entries, query)

	var buf bytes.Buffer
	if err := history.WriteCSV(&buf, entries); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if cfg.S3Bucket != "" {
		s3c, err := storage.NewS3(ctx, storage.S3Config{
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			Endpoint:     cfg.S3Endpoint,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			return err
		}

		key := path.Join(cfg.S3Prefix, fmt.Sprintf("history-%s.csv", time.Now().UTC().Format("20060102T150405Z")))
		if err := s3c.Put(ctx, cfg.S3Bucket, key, &buf, "text/csv"); err != nil {
			return err
		}
		log.Printf("✓ Exported %d entries to s3://%s/%s", len(entries), cfg.S3Bucket, key)
		return nil
	}

	w, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Printf("✓ Exported %d entries to %s", len(entries), out)
	return nil
}

// followEvents appends one CSV row per analysis event until interrupted
func followEvents(ctx context.Context, cfg *config.Config, out string) error {
	if len(cfg.KafkaBrokers) == 0 {
		return errors.New("KAFKA_BROKERS is required with -follow")
	}

	w, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()

	csvw := history.NewCSVWriter(w)
	consumer, err := events.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID,
		func(ctx context.Context, evt events.AnalysisCompleted) error {
			return csvw.WriteRow(evt.ID, evt.Headline, evt.Verdict, evt.Credibility, evt.CreatedAt)
		})
	if err != nil {
		return err
	}
	defer consumer.Close()

	log.Printf("✓ Following %s (group %s)", cfg.KafkaTopic, cfg.KafkaGroupID)
	return consumer.Run(ctx)
}

func openOutput(out string) (io.Writer, func(), error) {
	if out == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", out, err)
	}
	return f, func() { _ = f.Close() }, nil
}
