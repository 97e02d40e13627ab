// Package store holds finished extraction results for later retrieval. The
// pipeline itself never depends on it; any conforming implementation (in
// memory, SQLite, an external cache) can back the caller's report cache.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mamaaak/pdf-extraction-tool/internal/pipeline"
)

var ErrNotFound = errors.New("report not found")

// ReportStore is an insert-with-TTL key-value store for pipeline results.
// Implementations sweep expired entries on access; an expired entry behaves
// exactly like a missing one.
type ReportStore interface {
	Put(ctx context.Context, id string, res *pipeline.Result, ttl time.Duration) error
	Get(ctx context.Context, id string) (*pipeline.Result, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
