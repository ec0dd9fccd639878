package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/policy-transfer/internal/errs"
	"github.com/yourorg/policy-transfer/internal/ingest"
)

// IngestService parses and stores an uploaded JSON payload.
type IngestService interface {
	Ingest(ctx context.Context, payload []byte, filename string) (*ingest.Result, error)
}

// MigrationService copies one object from the source store to the destination.
type MigrationService interface {
	Copy(ctx context.Context, key string) error
}

type Handler struct {
	ingest   IngestService
	migrator MigrationService
	log      *zap.Logger
}

func NewHandler(ingest IngestService, migrator MigrationService, log *zap.Logger) *Handler {
	return &Handler{ingest: ingest, migrator: migrator, log: log}
}

// Register mounts the API routes.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/process-and-upload", h.ProcessAndUpload)
	r.POST("/fetch-from-s3", h.MigrateObject)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// MigrationRequest is the body of POST /fetch-from-s3.
type MigrationRequest struct {
	FileKey string `json:"file_key"`
}

func (h *Handler) MigrateObject(c *gin.Context) {
	var req MigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errs.Wrap(errs.InvalidRequest, "missing 'file_key' in request", err))
		return
	}

	if err := h.migrator.Copy(c.Request.Context(), req.FileKey); err != nil {
		h.log.Warn("migration failed",
			zap.String("file_key", req.FileKey),
			zap.String("kind", string(errs.KindOf(err))),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("object %q migrated to destination store", req.FileKey),
	})
}
