package model

import "time"

// Document represents an uploaded file's metadata record.
// This is a pure domain model shared across layers (HTTP, service,
// repositories); the firestore tags are the only store-facing detail and
// the localfile store reuses the json tags.
type Document struct {
	ID           string    `json:"id" firestore:"-"`
	OwnerID      string    `json:"owner_id" firestore:"ownerId"`
	OwnerEmail   string    `json:"owner_email" firestore:"ownerEmail"`
	StoredName   string    `json:"stored_name" firestore:"storedName"`
	OriginalName string    `json:"original_name" firestore:"originalName"`
	ContentType  string    `json:"content_type" firestore:"contentType"`
	Size         int64     `json:"size" firestore:"size"`
	StoragePath  string    `json:"storage_path" firestore:"storagePath"`
	Status       string    `json:"status" firestore:"status"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// Principal is the verified identity of a caller, produced by the auth
// middleware from a bearer ID token. A Document's OwnerID is always set
// from Principal.ID at creation, never from client input.
type Principal struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}
