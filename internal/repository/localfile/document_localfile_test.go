package localfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nezeon/legal-doc-backend/internal/model"
	"github.com/Nezeon/legal-doc-backend/internal/repository"
)

func newTestStore(t *testing.T) *DocumentLocal {
	t.Helper()
	store, err := NewDocumentLocal(filepath.Join(t.TempDir(), "documents.json"))
	require.NoError(t, err)
	return store
}

func TestCreateAssignsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	doc, err := store.Create(ctx, &model.Document{
		OwnerID:    "owner-1",
		StoredName: "upload-1.pdf",
		Status:     "uploaded",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, "owner-1", doc.OwnerID)
}

func TestListByOwnerFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Create(ctx, &model.Document{OwnerID: "alice", OriginalName: "a.pdf"})
	require.NoError(t, err)
	second, err := store.Create(ctx, &model.Document{OwnerID: "alice", OriginalName: "b.pdf"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &model.Document{OwnerID: "bob", OriginalName: "c.pdf"})
	require.NoError(t, err)

	docs, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, docs, 2)
	// Newest first; never another owner's record.
	assert.Equal(t, second.ID, docs[0].ID)
	assert.Equal(t, first.ID, docs[1].ID)
	for _, d := range docs {
		assert.Equal(t, "alice", d.OwnerID)
	}

	empty, err := store.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, &model.Document{OwnerID: "alice"})
	require.NoError(t, err)

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, &model.Document{
		OwnerID:      "alice",
		OriginalName: "a.pdf",
		Size:         42,
		Status:       "uploaded",
	})
	require.NoError(t, err)

	require.NoError(t, store.UpdateStatus(ctx, created.ID, "reviewed"))
	require.NoError(t, store.UpdateStatus(ctx, created.ID, "reviewed"))

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "reviewed", got.Status)
	// Other fields untouched.
	assert.Equal(t, "a.pdf", got.OriginalName)
	assert.Equal(t, int64(42), got.Size)

	docs, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	assert.ErrorIs(t, store.UpdateStatus(ctx, "missing", "reviewed"), repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, &model.Document{OwnerID: "alice"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting an absent record is not an error.
	assert.NoError(t, store.Delete(ctx, created.ID))
}

func TestMissingFileMeansEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	docs, err := store.ListByOwner(ctx, "anyone")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestEmptyFileMeansEmptyStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "documents.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := NewDocumentLocal(path)
	require.NoError(t, err)

	docs, err := store.ListByOwner(ctx, "anyone")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// Concurrent creates must not lose writes: the read-modify-write cycle on
// the backing file is serialized by the store's mutex.
func TestConcurrentCreatesLoseNoWrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	const n = 25
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, &model.Document{
				OwnerID:      "alice",
				OriginalName: fmt.Sprintf("doc-%d.txt", i),
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "create %d failed", i)
	}

	docs, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, docs, n)

	seen := make(map[string]bool, n)
	for _, d := range docs {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}
