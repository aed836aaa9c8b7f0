package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/converter"
	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/repository"
	"github.com/eraschle/railnorm/internal/vocab"
)

// stubReader serves a fixed record batch.
type stubReader struct {
	records []reader.RawRecord
}

func (s *stubReader) Read(_ context.Context) ([]reader.RawRecord, error) {
	return s.records, nil
}

func run(t *testing.T, records []reader.RawRecord) (Result, repository.Repository) {
	t.Helper()
	registry := vocab.NewRegistry()
	repo, err := repository.NewJSONRepository(filepath.Join(t.TempDir(), "elements.json"), nil)
	require.NoError(t, err)

	p := New(
		&stubReader{records: records},
		converter.NewGenericConverter(registry),
		element.NewFactory(registry, slog.Default()),
		repo,
		slog.Default(),
		2,
	)
	result, err := p.Run(context.Background())
	require.NoError(t, err)
	return result, repo
}

func TestRunBuildsAndStoresElements(t *testing.T) {
	records := []reader.RawRecord{
		{
			Kind:   "foundation",
			Source: "client-a",
			Fields: map[string]any{"guid": "f-1", "x": 100.0, "y": 200.0, "Breite": 1.5},
		},
		{
			Kind:   "mast",
			Source: "client-a",
			Fields: map[string]any{"guid": "m-1", "x": 100.0},
		},
	}

	result, repo := run(t, records)
	assert.Equal(t, 2, result.RecordsRead)
	assert.Equal(t, 2, result.ElementsBuilt)
	assert.Zero(t, result.RecordsFailed)

	got, err := repo.Get(context.Background(), "f-1")
	require.NoError(t, err)
	assert.Equal(t, element.KindFoundation, got.Kind())
	assert.True(t, got.HasComponent("location"))
	assert.True(t, got.HasComponent("dimension"))
}

func TestRunPartialBatchSuccess(t *testing.T) {
	records := []reader.RawRecord{
		{Kind: "foundation", Source: "client-a", Fields: map[string]any{"guid": "f-1", "x": 1.0}},
		{Kind: "spaceship", Source: "client-a", Fields: map[string]any{"x": 2.0}},
		{Kind: "", Source: "client-a", Fields: map[string]any{"x": 3.0}},
	}

	result, repo := run(t, records)
	assert.Equal(t, 3, result.RecordsRead)
	assert.Equal(t, 1, result.ElementsBuilt)
	assert.Equal(t, 2, result.RecordsFailed)

	elements, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, elements, 1)
}

func TestRunMirrorsReferencesAfterBatch(t *testing.T) {
	records := []reader.RawRecord{
		{
			Kind:   "mast",
			Source: "client-a",
			Fields: map[string]any{"guid": "m-1", "foundation_uuid": "f-1"},
		},
		{
			Kind:   "foundation",
			Source: "client-a",
			Fields: map[string]any{"guid": "f-1", "x": 1.0},
		},
	}

	result, repo := run(t, records)
	assert.Equal(t, 1, result.Link.Mirrored)
	assert.Empty(t, result.Link.Dangling)

	foundation, err := repo.Get(context.Background(), "f-1")
	require.NoError(t, err)
	assert.True(t, foundation.HasReference(element.KindMast, "m-1"))
}

func TestRunReportsDanglingReference(t *testing.T) {
	records := []reader.RawRecord{
		{
			Kind:   "mast",
			Source: "client-a",
			Fields: map[string]any{"guid": "m-1", "foundation_uuid": "missing"},
		},
	}

	result, _ := run(t, records)
	require.Len(t, result.Link.Dangling, 1)
	assert.Equal(t, "missing", result.Link.Dangling[0].TargetID)
}
