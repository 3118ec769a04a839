package repository

import (
	"context"

	"github.com/Nezeon/legal-doc-backend/internal/model"
)

// DocumentRepository defines metadata persistence for documents.
// No business logic here - strictly store operations. Ownership checks are
// the caller's responsibility; implementations never filter by caller
// except in ListByOwner.
type DocumentRepository interface {
	// Create inserts a new record and returns the stored document with its
	// assigned ID and CreatedAt.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// ListByOwner returns all records whose OwnerID equals ownerID,
	// ordered by CreatedAt descending (ties keep insertion order).
	ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// FindByID returns a record by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// UpdateStatus sets the status field of one record, or ErrNotFound.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a record by ID. Removing an absent record is not an
	// error.
	Delete(ctx context.Context, id string) error
}
