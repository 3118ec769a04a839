package localfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nezeon/legal-doc-backend/internal/model"
	"github.com/Nezeon/legal-doc-backend/internal/repository"
)

// DocumentLocal is the file-backed fallback implementation of
// repository.DocumentRepository, used when no Firestore credentials are
// configured. All records live in a single JSON array persisted to one
// file.
//
// Every operation is a full read-modify-write cycle on that file. The
// cycle must be serialized: two interleaved writers would silently drop
// one writer's change (last-writer-wins). The mutex below is the single
// serialization point; no mutation may bypass it.
type DocumentLocal struct {
	mu   sync.Mutex
	path string
}

// NewDocumentLocal creates a local store persisting to the given file
// path. The parent directory is created if missing; the file itself is
// created lazily on first write.
func NewDocumentLocal(path string) (*DocumentLocal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	return &DocumentLocal{path: path}, nil
}

var _ repository.DocumentRepository = (*DocumentLocal)(nil)

// Create assigns an ID and CreatedAt, prepends the record (newest first)
// and persists the whole array.
func (r *DocumentLocal) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}

	stored := *doc
	// Time-based prefix plus a random suffix so two creates in the same
	// millisecond cannot collide.
	stored.ID = fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	stored.CreatedAt = time.Now().UTC()

	docs = append([]model.Document{stored}, docs...)
	if err := r.save(docs); err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListByOwner filters records in memory and orders them by CreatedAt
// descending. The stable sort keeps insertion order for equal timestamps,
// which is already newest-first because Create prepends.
func (r *DocumentLocal) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}

	items := make([]model.Document, 0)
	for _, d := range docs {
		if d.OwnerID == ownerID {
			items = append(items, d)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// FindByID returns a record by its ID, or repository.ErrNotFound.
func (r *DocumentLocal) FindByID(ctx context.Context, id string) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			d := docs[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

// UpdateStatus rewrites the status field of one record. Setting the same
// status twice is a no-op on every other field.
func (r *DocumentLocal) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].ID == id {
			docs[i].Status = status
			return r.save(docs)
		}
	}
	return repository.ErrNotFound
}

// Delete removes a record by ID. An absent record is not an error.
func (r *DocumentLocal) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.load()
	if err != nil {
		return err
	}
	kept := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(docs) {
		return nil
	}
	return r.save(kept)
}

// load reads and decodes the backing file. A missing or empty file means
// an empty store, never an error. Callers must hold mu.
func (r *DocumentLocal) load() ([]model.Document, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	var docs []model.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	return docs, nil
}

// save writes the array atomically: encode to a temp file in the same
// directory, then rename over the target so readers never observe a
// partial write. Callers must hold mu.
func (r *DocumentLocal) save(docs []model.Document) error {
	b, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".documents-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
