package taskpaper

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/taskpaper/internal/platform"
	"github.com/aretw0/taskpaper/pkg/core"
)

// --- Types ---

// Document is a public alias for the parsed outline document.
type Document = core.Document

// Node is a public alias for the outline node interface.
type Node = core.Node

// Project, Task and Note are the node variants.
type (
	Project = core.Project
	Task    = core.Task
	Note    = core.Note
)

// Tag and TagSet expose the task tag mapping.
type (
	Tag    = core.Tag
	TagSet = core.TagSet
)

// Kind identifies a node variant.
type Kind = core.Kind

const (
	KindProject = core.KindProject
	KindTask    = core.KindTask
	KindNote    = core.KindNote
)

// Event is a document change notification emitted by Watch.
type Event = core.Event

// EventType classifies a change notification.
type EventType = core.EventType

const (
	EventCreate = core.EventCreate
	EventModify = core.EventModify
	EventDelete = core.EventDelete
)

// Service is the document service.
type Service = core.Service

// Repository is the storage contract consumed by the service.
type Repository = core.Repository

// --- Parsing ---

// Parse reads an outline from r. The source label is informational.
func Parse(r io.Reader, source string) (*Document, error) {
	return core.Parse(r, source)
}

// ParseString parses an in-memory outline.
func ParseString(s, source string) (*Document, error) {
	return core.ParseString(s, source)
}

// NewDocument creates an empty document with the given source label.
func NewDocument(source string) *Document {
	return core.NewDocument(source)
}

// ParseFile opens, parses and closes the file at path. The file's path
// becomes the document's source label.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return core.Parse(f, path)
}

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithMustExist ensures the document root must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithExtension overrides the document file extension.
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEventBuffer allows specifying the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a document service rooted at the given directory.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// Init initializes a repository explicitly.
func Init(root string, opts ...Option) (core.Repository, error) {
	return platform.Init(root, opts...)
}
