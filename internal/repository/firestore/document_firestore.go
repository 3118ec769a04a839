package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Nezeon/legal-doc-backend/internal/model"
	"github.com/Nezeon/legal-doc-backend/internal/repository"
)

// collection is the Firestore collection holding document metadata.
const collection = "documents"

// DocumentFirestore is a Firestore implementation of
// repository.DocumentRepository. Each operation maps to exactly one
// external call (Create performs a follow-up read to return the
// server-assigned createdAt). Errors are surfaced as-is and never retried
// here; callers decide how to react.
type DocumentFirestore struct {
	client *fs.Client
}

// NewDocumentFirestore creates a new Firestore-backed repository.
func NewDocumentFirestore(client *fs.Client) *DocumentFirestore {
	return &DocumentFirestore{client: client}
}

var _ repository.DocumentRepository = (*DocumentFirestore)(nil)

// Create inserts a new document and returns the stored record.
// CreatedAt is assigned server-side via the serverTimestamp tag.
func (r *DocumentFirestore) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	ref := r.client.Collection(collection).NewDoc()
	if _, err := ref.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("firestore create: %w", err)
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore read back: %w", err)
	}
	return fromSnapshot(snap)
}

// ListByOwner returns the owner's documents ordered by createdAt descending.
func (r *DocumentFirestore) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	iter := r.client.Collection(collection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx)
	defer iter.Stop()

	items := make([]model.Document, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore query: %w", err)
		}
		d, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentFirestore) FindByID(ctx context.Context, id string) (*model.Document, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("firestore get: %w", err)
	}
	return fromSnapshot(snap)
}

// UpdateStatus performs a partial update of the status field only.
func (r *DocumentFirestore) UpdateStatus(ctx context.Context, id, docStatus string) error {
	_, err := r.client.Collection(collection).Doc(id).Update(ctx, []fs.Update{
		{Path: "status", Value: docStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotFound
		}
		return fmt.Errorf("firestore update: %w", err)
	}
	return nil
}

// Delete removes a document by ID. Firestore deletes are idempotent, so an
// absent record is not an error.
func (r *DocumentFirestore) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete: %w", err)
	}
	return nil
}

func fromSnapshot(snap *fs.DocumentSnapshot) (*model.Document, error) {
	var d model.Document
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", snap.Ref.ID, err)
	}
	d.ID = snap.Ref.ID
	return &d, nil
}
