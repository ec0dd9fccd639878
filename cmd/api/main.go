package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"

	"github.com/yourorg/policy-transfer/internal/api"
	"github.com/yourorg/policy-transfer/internal/config"
	"github.com/yourorg/policy-transfer/internal/db"
	"github.com/yourorg/policy-transfer/internal/ingest"
	"github.com/yourorg/policy-transfer/internal/metrics"
	"github.com/yourorg/policy-transfer/internal/migrate"
	"github.com/yourorg/policy-transfer/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Structured logger (zap)
	zl := newZap(cfg.LogLevel)
	defer zl.Sync()

	// Metrics server
	metrics.Init()
	go func() {
		_ = metrics.Serve(cfg.MetricsAddr)
	}()

	// Relational sink
	database, err := db.NewDatabase(db.FromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Object stores
	ctx := context.Background()
	source, err := storage.NewS3(ctx, cfg.SourceBucket)
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}
	dest, err := storage.NewAzure(cfg.AzureConnectionString, cfg.AzureContainer)
	if err != nil {
		log.Fatalf("Failed to initialize Azure Blob client: %v", err)
	}

	ingestSvc := ingest.New(database.DB, source, cfg.ResultsKey, zl)
	copier := migrate.NewCopier(source, dest, zl)

	// Initialize Gin
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20 // 8MB

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	handler := api.NewHandler(ingestSvc, copier, zl)
	handler.Register(r)

	zl.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("bucket", cfg.SourceBucket),
		zap.String("container", cfg.AzureContainer),
		zap.String("metrics", cfg.MetricsAddr),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newZap(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
