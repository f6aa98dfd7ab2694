package core

import (
	"context"
	"errors"
	"sync"
)

// DefaultEventBuffer is the watch event channel capacity used when no
// explicit buffer size is configured.
const DefaultEventBuffer = 100

// Service handles the business logic for outline documents.
type Service struct {
	mu              sync.RWMutex
	repo            Repository
	eventBufferSize int
}

// NewService creates a new Service. A non-positive eventBufferSize falls
// back to DefaultEventBuffer.
func NewService(repo Repository, eventBufferSize int) *Service {
	if eventBufferSize <= 0 {
		eventBufferSize = DefaultEventBuffer
	}
	return &Service{repo: repo, eventBufferSize: eventBufferSize}
}

// LoadDocument reads and parses a document by name.
func (s *Service) LoadDocument(ctx context.Context, name string) (*Document, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return s.repo.Load(ctx, name)
}

// StoreDocument renders a document and persists it under the given name.
func (s *Service) StoreDocument(ctx context.Context, name string, doc *Document) error {
	if name == "" {
		return ErrEmptyName
	}
	if doc == nil {
		return ErrNilDocument
	}
	return s.repo.Store(ctx, name, doc)
}

// ListDocuments returns the names of available documents matching pattern.
func (s *Service) ListDocuments(ctx context.Context, pattern string) ([]string, error) {
	return s.repo.List(ctx, pattern)
}

// FilterByTag loads a document and returns its tasks carrying the tag, in
// depth-first document order.
func (s *Service) FilterByTag(ctx context.Context, name, tag string) ([]*Task, error) {
	doc, err := s.LoadDocument(ctx, name)
	if err != nil {
		return nil, err
	}
	return doc.FilterByTag(tag), nil
}

// Watch observes changes to stored documents if the repository supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
