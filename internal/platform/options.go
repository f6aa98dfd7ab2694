package platform

import (
	"log/slog"

	"github.com/aretw0/taskpaper/pkg/core"
)

// options holds the internal configuration for the taskpaper service.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	extension   string
	mustExist   bool
	eventBuffer int
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository:  nil,
		logger:      nil,
		extension:   "", // adapter default
		mustExist:   false,
		eventBuffer: 0, // core default
	}
}

// WithLogger sets the logger for the service and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMustExist ensures the document root must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithExtension overrides the file extension documents are stored under
// (e.g. ".todo"). Defaults to ".taskpaper".
func WithExtension(ext string) Option {
	return func(o *options) {
		o.extension = ext
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEventBuffer allows specifying the size of the watch event buffer.
// Zero means the core default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
