package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

func testElement(t *testing.T, id string, kind element.Kind) *element.Element {
	t.Helper()
	e := element.New(id, "element "+id, kind, "test")
	x := param.Tagged("x", 1.0, vocab.TypeNumber, vocab.TagCoordX, units.Meter)
	require.NoError(t, e.SetParam(x))
	return e
}

func openRepo(t *testing.T, path string) *JSONRepository {
	t.Helper()
	repo, err := NewJSONRepository(path, nil)
	require.NoError(t, err)
	return repo
}

func TestJSONRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "elements.json"))

	e := testElement(t, "a-1", element.KindMast)
	require.NoError(t, repo.Save(ctx, e))

	got, err := repo.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, e.Equal(got))

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "a-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a-1"), ErrNotFound)
}

func TestJSONRepositoryListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "elements.json"))

	require.NoError(t, repo.Save(ctx, testElement(t, "m-1", element.KindMast)))
	require.NoError(t, repo.Save(ctx, testElement(t, "f-1", element.KindFoundation)))
	require.NoError(t, repo.Save(ctx, testElement(t, "m-2", element.KindMast)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m-1", all[0].ID())
	assert.Equal(t, "f-1", all[1].ID())

	masts, err := repo.List(ctx, element.KindMast)
	require.NoError(t, err)
	require.Len(t, masts, 2)
	assert.Equal(t, "m-2", masts[1].ID())
}

func TestJSONRepositoryPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "project", "elements.json")

	repo := openRepo(t, path)
	e := testElement(t, "a-1", element.KindFoundation)
	e.AddReference(element.KindMast, "m-1", true)
	require.NoError(t, repo.Save(ctx, e))
	require.NoError(t, repo.Flush(ctx))

	reopened := openRepo(t, path)
	got, err := reopened.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, element.KindFoundation, got.Kind())
	assert.True(t, got.HasParam(vocab.TagCoordX))
	assert.True(t, got.HasReference(element.KindMast, "m-1"))
}

func TestJSONRepositoryFlushNoChangesIsNoOp(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "elements.json")
	repo := openRepo(t, path)

	require.NoError(t, repo.Flush(ctx))
	assert.NoFileExists(t, path)
}

func TestLinkerMirrorsBidirectionalReferences(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "elements.json"))

	mast := testElement(t, "m-1", element.KindMast)
	foundation := testElement(t, "f-1", element.KindFoundation)
	mast.AddReference(element.KindFoundation, "f-1", true)
	require.NoError(t, repo.Save(ctx, mast))
	require.NoError(t, repo.Save(ctx, foundation))

	// Before the resolution phase nothing is mirrored.
	assert.False(t, foundation.HasReference(element.KindMast, "m-1"))

	report, err := NewLinker(repo, nil).Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Mirrored)
	assert.Empty(t, report.Dangling)

	got, err := repo.Get(ctx, "f-1")
	require.NoError(t, err)
	refs := got.References(element.KindMast)
	require.Len(t, refs, 1)
	assert.Equal(t, "m-1", refs[0].TargetID)
	assert.True(t, refs[0].Bidirectional)
}

func TestLinkerIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "elements.json"))

	mast := testElement(t, "m-1", element.KindMast)
	mast.AddReference(element.KindFoundation, "f-1", true)
	require.NoError(t, repo.Save(ctx, mast))
	require.NoError(t, repo.Save(ctx, testElement(t, "f-1", element.KindFoundation)))

	_, err := NewLinker(repo, nil).Resolve(ctx)
	require.NoError(t, err)
	second, err := NewLinker(repo, nil).Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Mirrored)
}

func TestLinkerReportsDangling(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "elements.json"))

	mast := testElement(t, "m-1", element.KindMast)
	mast.AddReference(element.KindFoundation, "gone", true)
	mast.AddReference(element.KindTrack, "t-1", false)
	require.NoError(t, repo.Save(ctx, mast))

	report, err := NewLinker(repo, nil).Resolve(ctx)
	require.NoError(t, err)

	// Unidirectional references are not checked at all.
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Mirrored)
	require.Len(t, report.Dangling, 1)
	assert.Equal(t, "gone", report.Dangling[0].TargetID)
	assert.Equal(t, "m-1", report.Dangling[0].ElementID)
}
