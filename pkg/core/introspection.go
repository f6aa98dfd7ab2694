package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	EventBufferSize int    `json:"event_buffer_size"`
	RepositoryType  string `json:"repository_type"`
	WatchSupported  bool   `json:"watch_supported"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{EventBufferSize: s.eventBufferSize}
	if s.repo != nil {
		state.RepositoryType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			state.RepositoryType = comp.ComponentType()
		}
		_, state.WatchSupported = s.repo.(Watchable)
	} else {
		state.RepositoryType = "unknown"
	}

	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
