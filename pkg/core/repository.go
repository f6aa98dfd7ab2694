package core

import "context"

// Repository defines the contract for loading and storing outline
// documents. Adhering to this interface keeps the core independent of the
// underlying source (filesystem, in-memory, remote).
type Repository interface {
	// Load reads and parses the document with the given name.
	Load(ctx context.Context, name string) (*Document, error)

	// Store renders the document and persists it under the given name,
	// creating it if it does not exist.
	Store(ctx context.Context, name string, doc *Document) error

	// List returns the names of available documents matching pattern.
	// An empty pattern lists everything the repository considers a document.
	List(ctx context.Context, pattern string) ([]string, error)

	// Initialize ensures the underlying storage is ready (e.g. the root
	// directory exists).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can observe
// external changes to their documents.
type Watchable interface {
	// Watch emits an event for every change to documents matching pattern
	// until ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
