// Package users holds the in-memory user registry.
//
// The registry is an ordered list with linear-scan lookup. Identifiers are not
// checked for uniqueness; lookups return the first match in insertion order.
package users

import (
	"log"
	"slices"
	"sync"
)

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier routes registry events to n.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithLogger routes registry events to a LogNotifier writing to l.
func WithLogger(l *log.Logger) Option {
	return WithNotifier(LogNotifier{Logger: l})
}

// Manager is an ordered, mutex-guarded list of users. The zero value is not
// usable; call NewManager.
type Manager struct {
	mu       sync.Mutex
	users    []User
	notifier Notifier
}

// NewManager creates an empty Manager. Without options events are logged
// through the standard logger.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		notifier: LogNotifier{Logger: log.Default()},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends u to the end of the list.
func (m *Manager) Add(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = append(m.users, u)
	m.emit(EventAdded, u)
}

// FindByID returns the first user with the given id.
func (m *Manager) FindByID(id int) (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return User{}, false
	}
	return m.users[i], true
}

// ActiveUsers returns the active users in insertion order.
func (m *Manager) ActiveUsers() []User {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := make([]User, 0, len(m.users))
	for _, u := range m.users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active
}

// All returns a copy of every user in insertion order. The result is never
// nil.
func (m *Manager) All() []User {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]User, len(m.users))
	copy(all, m.users)
	return all
}

// Count returns the number of users held.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// Remove deletes the first user with the given id and reports whether one
// was found.
func (m *Manager) Remove(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	removed := m.users[i]
	m.users = slices.Delete(m.users, i, i+1)
	m.emit(EventRemoved, removed)
	return true
}

// indexOf must be called with mu held.
func (m *Manager) indexOf(id int) int {
	return slices.IndexFunc(m.users, func(u User) bool { return u.ID == id })
}

func (m *Manager) emit(kind EventKind, u User) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(newEvent(kind, u))
}
