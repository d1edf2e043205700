// Package docstore is the document-store collaborator the domain services
// persist through. Documents are whole JSON aggregates keyed by
// (collection, id); Set always overwrites the full document, there is no
// partial patch. Concurrent writers to the same id race under
// last-write-wins.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Delete when no document exists under
// the given collection and id.
var ErrNotFound = errors.New("document not found")

// Store is the narrow persistence interface consumed by the services.
// Implementations perform no schema enforcement: callers validate before
// Set and never trust the stored shape on the way out.
type Store interface {
	// Get decodes the document into out, which must be a pointer.
	Get(ctx context.Context, collection, id string, out any) error
	// Set stores doc under (collection, id), creating it if absent.
	Set(ctx context.Context, collection, id string, doc any) error
	// Delete removes the document, failing with ErrNotFound if absent.
	Delete(ctx context.Context, collection, id string) error
	// List decodes every document in the collection into out, which must
	// be a pointer to a slice. Iteration order is insertion order.
	List(ctx context.Context, collection string, out any) error
	// NewID returns a fresh store-assigned opaque id.
	NewID() string
}
