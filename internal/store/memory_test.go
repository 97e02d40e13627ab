package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaaak/pdf-extraction-tool/internal/pipeline"
)

func sampleResult(confidence int) *pipeline.Result {
	return &pipeline.Result{Confidence: confidence}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "r1", sampleResult(90), time.Hour))

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 90, got.Confidence)

	require.NoError(t, s.Delete(ctx, "r1"))
	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExpiresOnAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(ctx, "r1", sampleResult(80), time.Minute))
	require.NoError(t, s.Put(ctx, "r2", sampleResult(70), time.Hour))

	// advance past r1's deadline only
	now = now.Add(2 * time.Minute)

	_, err := s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Get(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, 70, got.Confidence)
}

func TestMemoryStore_SweepOnPut(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(ctx, "stale", sampleResult(10), time.Minute))
	now = now.Add(time.Hour)
	require.NoError(t, s.Put(ctx, "fresh", sampleResult(20), time.Minute))

	s.mu.Lock()
	_, staleKept := s.entries["stale"]
	s.mu.Unlock()
	assert.False(t, staleKept, "expired entries are swept on any access")
}

func TestMemoryStore_Missing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
