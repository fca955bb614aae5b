package users

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies what happened to a user.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRemoved EventKind = "removed"
)

// Event is emitted by a Manager after a successful mutation.
type Event struct {
	ID   uuid.UUID
	Kind EventKind
	User User
	At   time.Time
}

func newEvent(kind EventKind, u User) Event {
	return Event{
		ID:   uuid.New(),
		Kind: kind,
		User: u,
		At:   time.Now(),
	}
}

// Notifier receives registry events. Notify is called with the manager's
// lock held, so it must not call back into the Manager.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// LogNotifier writes one line per event to a log.Logger.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify logs e.
func (n LogNotifier) Notify(e Event) {
	if n.Logger == nil {
		return
	}
	n.Logger.Printf("user %s %s (id=%d event=%s)", e.User.Name, e.Kind, e.User.ID, e.ID)
}
