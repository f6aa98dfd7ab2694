// Package core holds the outline domain: node variants, the tree builder,
// documents and the service layer. It is agnostic to where documents live.
package core

import "fmt"

// EventType represents the type of change observed on stored documents.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored document.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and for the lifecycle event bridge.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}
