package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framehouse/estimate-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestExtractionCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	res := model.ExtractionResult{
		Document: &model.DocumentInfo{Currency: "EUR"},
		Packages: []model.Package{{Price: 180000}},
	}
	require.NoError(t, s.SetCachedExtraction(ctx, "abc123", res, time.Hour))

	got, err := s.GetCachedExtraction(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "EUR", got.Document.Currency)
	require.Len(t, got.Packages, 1)
	assert.Equal(t, 180000.0, got.Packages[0].Price)
}

func TestExtractionCacheMiss(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetCachedExtraction(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExtractionCacheExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCachedExtraction(ctx, "stale", model.ExtractionResult{}, -time.Hour))

	got, err := s.GetCachedExtraction(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, got)

	n, err := s.DeleteExpiredExtractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
