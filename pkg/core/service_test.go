package core

import (
	"context"
	"errors"
	"testing"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	docs map[string]*Document
}

func newMemRepo() *memRepo {
	return &memRepo{docs: make(map[string]*Document)}
}

func (r *memRepo) Initialize(ctx context.Context) error { return nil }

func (r *memRepo) Load(ctx context.Context, name string) (*Document, error) {
	doc, ok := r.docs[name]
	if !ok {
		return nil, errors.New("not found: " + name)
	}
	return doc, nil
}

func (r *memRepo) Store(ctx context.Context, name string, doc *Document) error {
	r.docs[name] = doc
	return nil
}

func (r *memRepo) List(ctx context.Context, pattern string) ([]string, error) {
	names := make([]string, 0, len(r.docs))
	for name := range r.docs {
		names = append(names, name)
	}
	return names, nil
}

func TestService_Validation(t *testing.T) {
	svc := NewService(newMemRepo(), 0)
	ctx := context.Background()

	if _, err := svc.LoadDocument(ctx, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("LoadDocument(\"\") err = %v, want ErrEmptyName", err)
	}
	if err := svc.StoreDocument(ctx, "", NewDocument("x")); !errors.Is(err, ErrEmptyName) {
		t.Errorf("StoreDocument(\"\") err = %v, want ErrEmptyName", err)
	}
	if err := svc.StoreDocument(ctx, "x", nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("StoreDocument(nil) err = %v, want ErrNilDocument", err)
	}
}

func TestService_FilterByTag(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, 0)
	ctx := context.Background()

	doc, err := ParseString("Inbox:\n\t- a @x\n\t- b\n\t- c @x\n", "inbox")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if err := svc.StoreDocument(ctx, "inbox", doc); err != nil {
		t.Fatalf("StoreDocument() error = %v", err)
	}

	tasks, err := svc.FilterByTag(ctx, "inbox", "x")
	if err != nil {
		t.Fatalf("FilterByTag() error = %v", err)
	}
	if len(tasks) != 2 || tasks[0].Name() != "a" || tasks[1].Name() != "c" {
		t.Errorf("FilterByTag() = %v, want tasks a, c", tasks)
	}

	if _, err := svc.FilterByTag(ctx, "missing", "x"); err == nil {
		t.Error("FilterByTag(missing) error = nil, want load failure")
	}
}

func TestService_WatchUnsupported(t *testing.T) {
	svc := NewService(newMemRepo(), 0)

	if _, err := svc.Watch(context.Background(), ""); err == nil {
		t.Error("Watch() error = nil, want unsupported error")
	}
}

func TestService_State(t *testing.T) {
	svc := NewService(newMemRepo(), 42)

	state, ok := svc.State().(ServiceState)
	if !ok {
		t.Fatalf("State() = %T, want ServiceState", svc.State())
	}
	if state.EventBufferSize != 42 {
		t.Errorf("EventBufferSize = %d, want 42", state.EventBufferSize)
	}
	if state.RepositoryType != "repository" {
		t.Errorf("RepositoryType = %q, want repository", state.RepositoryType)
	}
	if state.WatchSupported {
		t.Error("WatchSupported = true for a non-watchable repository")
	}
}
