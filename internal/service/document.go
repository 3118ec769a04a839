package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nezeon/legal-doc-backend/internal/model"
	"github.com/Nezeon/legal-doc-backend/internal/repository"
	"github.com/Nezeon/legal-doc-backend/internal/storage"
)

// MaxUploadSize is the upload ceiling in bytes (10 MiB).
const MaxUploadSize = 10 << 20

// StatusUploaded is the initial status of every new document record.
const StatusUploaded = "uploaded"

var (
	ErrNoFile           = errors.New("no file provided")
	ErrInvalidFileType  = errors.New("file type not allowed")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrIDRequired       = errors.New("id is required")
	ErrStatusRequired   = errors.New("status is required")
	ErrNotFound         = errors.New("document not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrStoreUnavailable = errors.New("metadata store unavailable")
)

// allowedTypes maps each permitted extension to the declared content type
// it must arrive with.
var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// DocumentService defines the use cases for handling documents. Every
// operation that touches an existing record takes the calling principal
// and enforces ownership before acting.
type DocumentService interface {
	// Upload validates the file (extension, declared content type, size),
	// persists the bytes to the content directory, and creates the
	// metadata record owned by the principal. If the metadata create
	// fails after the file was written, the file is rolled back.
	Upload(ctx context.Context, p model.Principal, r io.Reader, originalName, contentType string, size int64) (*model.Document, error)

	// List returns the principal's documents, newest first.
	List(ctx context.Context, p model.Principal) ([]model.Document, error)

	// Get returns a single document if the principal owns it.
	Get(ctx context.Context, p model.Principal, id string) (*model.Document, error)

	// UpdateStatus sets the record's status if the principal owns it.
	UpdateStatus(ctx context.Context, p model.Principal, id, status string) error

	// Delete removes the record and, best-effort, its file on disk.
	Delete(ctx context.Context, p model.Principal, id string) error
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Upload(ctx context.Context, p model.Principal, r io.Reader, originalName, contentType string, size int64) (*model.Document, error) {
	if r == nil {
		return nil, ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	wantType, ok := allowedTypes[ext]
	if !ok {
		return nil, ErrInvalidFileType
	}
	if contentType != wantType {
		return nil, ErrInvalidFileType
	}
	if size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	// Generated name: timestamp plus random suffix, collision-free across
	// concurrent uploads in the same process.
	name := fmt.Sprintf("upload-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	// The limit reader guards against a lying declared size; the extra
	// byte distinguishes "exactly at the limit" from "over it".
	info, err := s.store.Put(ctx, name, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}
	if info.Size > MaxUploadSize {
		if delErr := s.store.Delete(ctx, info.Path); delErr != nil {
			logCleanupFailure(info.Path, delErr)
		}
		return nil, ErrFileTooLarge
	}

	doc := &model.Document{
		OwnerID:      p.ID,
		OwnerEmail:   p.Email,
		StoredName:   name,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         info.Size,
		StoragePath:  info.Path,
		Status:       StatusUploaded,
	}
	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Roll back the file write so no orphaned bytes remain.
		if delErr := s.store.Delete(ctx, info.Path); delErr != nil {
			return nil, fmt.Errorf("%w: %w; rollback delete failed: %v", ErrStoreUnavailable, err, delErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return created, nil
}

func (s *documentService) List(ctx context.Context, p model.Principal) ([]model.Document, error) {
	docs, err := s.repo.ListByOwner(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return docs, nil
}

func (s *documentService) Get(ctx context.Context, p model.Principal, id string) (*model.Document, error) {
	doc, err := s.fetchOwned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, p model.Principal, id, status string) error {
	if status == "" {
		return ErrStatusRequired
	}
	if _, err := s.fetchOwned(ctx, p, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the metadata record first, then the file on disk. A file
// cleanup failure is logged and does not fail the deletion; the record is
// authoritative and the content directory tolerates stray files better
// than handlers tolerate dangling records.
func (s *documentService) Delete(ctx context.Context, p model.Principal, id string) error {
	doc, err := s.fetchOwned(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		logCleanupFailure(doc.StoragePath, err)
	}
	return nil
}

// fetchOwned loads a record and enforces ownership. A record owned by a
// different principal yields ErrAccessDenied, deliberately distinct from
// ErrNotFound.
func (s *documentService) fetchOwned(ctx context.Context, p model.Principal, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if doc.OwnerID != p.ID {
		return nil, ErrAccessDenied
	}
	return doc, nil
}

func logCleanupFailure(path string, err error) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "warn",
		"component": "service",
		"event":     "file_cleanup_failed",
		"path":      path,
		"error":     err.Error(),
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
