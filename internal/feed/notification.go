// Package feed implements the in-app notification feed: an ordered,
// in-memory collection of user-facing events with an unread counter.
//
// The feed never fails and performs no I/O. All operations are linearizable,
// so producers (UI actions, chain read callbacks, session monitors) may call
// it concurrently.
package feed

import "time"

// Type classifies a notification for presentation.
type Type string

const (
	TypeInfo        Type = "info"
	TypeSuccess     Type = "success"
	TypeWarning     Type = "warning"
	TypeError       Type = "error"
	TypeTransaction Type = "transaction"
)

// Input carries the caller-provided fields of a new notification.
type Input struct {
	Type    Type
	Title   string
	Message string
	Link    string // optional
	Data    any    // optional auxiliary payload, e.g. a chain read result
}

// Notification is a user-facing record of an event.
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Link      string
	Data      any
}
