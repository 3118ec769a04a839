// Package repository contains data access abstractions for document
// metadata. Implementations live in subpackages (firestore, localfile).
package repository

import "errors"

// ErrNotFound is returned by any implementation when no record exists for
// the given id. Callers map it to their own not-found representation.
var ErrNotFound = errors.New("document record not found")
