package migrate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yourorg/policy-transfer/internal/errs"
	"github.com/yourorg/policy-transfer/internal/metrics"
	"github.com/yourorg/policy-transfer/internal/storage"
)

// Copier performs the object-migration operation: fetch an object from the
// source store and write it unchanged, under the same key, to the destination
// store. The copy is not transactional; a failed destination write leaves the
// destination untouched at that key and rerunning the copy is the recovery
// path. Overwrite semantics at the destination make reruns idempotent.
type Copier struct {
	source storage.ObjectStore
	dest   storage.ObjectStore
	log    *zap.Logger
}

func NewCopier(source, dest storage.ObjectStore, log *zap.Logger) *Copier {
	return &Copier{source: source, dest: dest, log: log}
}

// Copy migrates a single object. The key is validated before any store access.
func (c *Copier) Copy(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errs.New(errs.InvalidRequest, "file_key must not be empty")
	}

	body, size, err := c.source.Get(ctx, key)
	if err != nil {
		metrics.MigrationFailures.Inc()
		if errors.Is(err, storage.ErrNotFound) {
			return errs.Wrap(errs.SourceNotFound,
				fmt.Sprintf("object %q not found in source store", key), err)
		}
		return errs.Wrap(errs.SourceUnavailable,
			fmt.Sprintf("failed to fetch %q from source store", key), err)
	}
	defer body.Close()

	if err := c.dest.Put(ctx, key, body); err != nil {
		metrics.MigrationFailures.Inc()
		return errs.Wrap(errs.DestinationWriteError,
			fmt.Sprintf("failed to write %q to destination store", key), err)
	}

	metrics.MigrationsCompleted.Inc()
	c.log.Info("object migrated",
		zap.String("key", key),
		zap.Int64("size_bytes", size),
	)
	return nil
}
