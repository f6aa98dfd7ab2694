package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/taskpaper/pkg/core"
)

type documentSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits document change events.
// It bridges the typed core event channel to the generic lifecycle Event
// interface so applications can supervise a watch alongside other workers.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &documentSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *documentSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *documentSource) Start(ctx context.Context) error {
	// lifecycle.Go keeps the bridge goroutine itself tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
