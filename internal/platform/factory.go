package platform

import (
	"context"

	"github.com/aretw0/taskpaper/pkg/adapters/fs"
	"github.com/aretw0/taskpaper/pkg/core"
)

// New wires a repository and the domain service for the given document root.
func New(root string, opts ...Option) (*core.Service, error) {
	repo, err := Init(root, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.eventBuffer), nil
}

// Init configures and initializes the repository for the given root.
// If a custom repository was injected via options, it is used as is.
func Init(root string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	repo := fs.NewRepository(fs.Config{
		Root:        root,
		Extension:   o.extension,
		MustExist:   o.mustExist,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}
