// Package model holds the demo data shown by the TUI pages.
package model

import (
	"fmt"
	"sync"
)

// Model is an in-memory inbox and contact book.
type Model struct {
	mu       sync.RWMutex
	messages []string
	contacts []string
	fetched  int
}

// New creates a model seeded with sample data.
func New() *Model {
	return &Model{
		messages: []string{
			"alice: lunch tomorrow?",
			"bob: the build is green again",
			"carol: slides are in the shared folder",
		},
		contacts: []string{"alice", "bob", "carol"},
	}
}

// Messages returns a copy of the inbox, oldest first.
func (m *Model) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.messages...)
}

// Contacts returns a copy of the contact list.
func (m *Model) Contacts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.contacts...)
}

// Send appends an outgoing message to the inbox.
func (m *Model) Send(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, "me: "+text)
}

// Refresh pretends to fetch one new message and returns it.
func (m *Model) Refresh() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetched++
	msg := fmt.Sprintf("daemon: sync #%d complete", m.fetched)
	m.messages = append(m.messages, msg)
	return msg
}

// AddContact adds a contact named after the current contact count.
func (m *Model) AddContact() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := fmt.Sprintf("contact-%d", len(m.contacts)+1)
	m.contacts = append(m.contacts, name)
	return name
}
