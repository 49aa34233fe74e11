package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framehouse/estimate-cli/internal/model"
)

func writeDocs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
	return dir
}

func TestListPDFs(t *testing.T) {
	dir := writeDocs(t, "b.pdf", "a.PDF", "notes.txt")

	docs, err := listPDFs(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.PDF", filepath.Base(docs[0]))
	assert.Equal(t, "b.pdf", filepath.Base(docs[1]))
}

func TestListPDFs_Empty(t *testing.T) {
	dir := writeDocs(t, "notes.txt")

	_, err := listPDFs(dir)
	assert.Error(t, err)
}

func TestProcessDocs_RunsAll(t *testing.T) {
	docs := []string{"a.pdf", "b.pdf", "c.pdf"}

	var ran atomic.Int64
	outcomes, err := processDocs(context.Background(), docs, 0, 2, func(ctx context.Context, path string) (model.Comparison, error) {
		ran.Add(1)
		return model.Comparison{Winner: model.WinnerOur}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ran.Load())
	require.Len(t, outcomes, 3)
	assert.Equal(t, "a.pdf", outcomes[0].Name)
	assert.Equal(t, model.WinnerOur, outcomes[0].Result.Winner)
}

func TestProcessDocs_AppliesLimit(t *testing.T) {
	docs := []string{"a.pdf", "b.pdf", "c.pdf"}

	var ran atomic.Int64
	outcomes, err := processDocs(context.Background(), docs, 2, 1, func(ctx context.Context, path string) (model.Comparison, error) {
		ran.Add(1)
		return model.Comparison{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ran.Load())
	assert.Len(t, outcomes, 2)
}

func TestProcessDocs_IndividualFailureDoesNotAbort(t *testing.T) {
	docs := []string{"fail.pdf", "ok.pdf"}

	outcomes, err := processDocs(context.Background(), docs, 0, 1, func(ctx context.Context, path string) (model.Comparison, error) {
		if filepath.Base(path) == "fail.pdf" {
			return model.Comparison{}, eris.New("extraction failed")
		}
		return model.Comparison{Winner: model.WinnerTie}, nil
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, model.WinnerTie, outcomes[1].Result.Winner)
}
