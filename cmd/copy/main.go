// Command copy re-runs a single object copy with the same configuration as
// the API server. It is the manual recovery path when a destination write
// failed after a successful source read; overwrite semantics make the rerun
// idempotent.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/yourorg/policy-transfer/internal/config"
	"github.com/yourorg/policy-transfer/internal/migrate"
	"github.com/yourorg/policy-transfer/internal/storage"
)

func main() {
	key := flag.String("key", "", "object key to copy from the source store to the destination")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall operation timeout")
	flag.Parse()

	if *key == "" {
		log.Fatal("usage: copy -key <file_key>")
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		zl = zap.NewNop()
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	source, err := storage.NewS3(ctx, cfg.SourceBucket)
	if err != nil {
		log.Fatalf("s3 init: %v", err)
	}
	dest, err := storage.NewAzure(cfg.AzureConnectionString, cfg.AzureContainer)
	if err != nil {
		log.Fatalf("azure init: %v", err)
	}

	copier := migrate.NewCopier(source, dest, zl)
	if err := copier.Copy(ctx, *key); err != nil {
		log.Fatalf("copy %q failed: %v", *key, err)
	}
	log.Printf("copied %q to destination store", *key)
}
