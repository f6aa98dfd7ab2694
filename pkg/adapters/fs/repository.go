package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/taskpaper/pkg/core"
)

// DefaultExtension is appended to document names that carry no extension.
const DefaultExtension = ".taskpaper"

// Repository implements core.Repository on top of a directory of outline
// files. Each document is one file; the document name is its path relative
// to the root, extension stripped.
type Repository struct {
	Root   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Root      string
	Extension string // defaults to DefaultExtension
	MustExist bool
	Logger    *slog.Logger
	// EventBuffer is the watch channel capacity. Zero means the core default.
	EventBuffer int
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = core.DefaultEventBuffer
	}
	return &Repository{
		Root:   config.Root,
		config: config,
	}
}

// Initialize ensures the root directory is usable.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Root)
		if os.IsNotExist(err) {
			return fmt.Errorf("document root does not exist: %s", r.Root)
		}
		if err != nil {
			return fmt.Errorf("stat document root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("document root is not a directory: %s", r.Root)
		}
		return nil
	}

	if err := os.MkdirAll(r.Root, 0755); err != nil {
		return fmt.Errorf("failed to create document root: %w", err)
	}
	return nil
}

// Load opens and parses the named document. The file handle is scoped to
// this call and released on every exit path.
func (r *Repository) Load(ctx context.Context, name string) (*core.Document, error) {
	f, err := os.Open(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", name, err)
	}
	defer f.Close()

	doc, err := core.Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", name, err)
	}
	return doc, nil
}

// Store renders the document and writes it atomically under the given name.
func (r *Repository) Store(ctx context.Context, name string, doc *core.Document) error {
	path := r.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", name, err)
	}
	if err := writeFileAtomic(path, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("store document %s: %w", name, err)
	}
	if r.config.Logger != nil {
		r.config.Logger.Debug("document stored", "name", name, "path", path)
	}
	return nil
}

// List returns the names of documents under the root matching pattern.
// Patterns use doublestar syntax relative to the root; an empty pattern
// matches every file with the configured extension.
func (r *Repository) List(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "**/*" + r.config.Extension
	}

	matches, err := doublestar.Glob(os.DirFS(r.Root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := iofs.Stat(os.DirFS(r.Root), m)
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(m, r.config.Extension))
	}
	sort.Strings(names)
	return names, nil
}

// path maps a document name to its absolute file path.
func (r *Repository) path(name string) string {
	if filepath.Ext(name) == "" {
		name += r.config.Extension
	}
	return filepath.Join(r.Root, filepath.FromSlash(name))
}

// resolveName maps an absolute file path back to its document name.
func (r *Repository) resolveName(path string) (string, error) {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, r.config.Extension), nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
