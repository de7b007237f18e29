// Package notify is the transient user-facing notification channel. Commands
// publish their outcome here; the view layer reads the recent ring. Nothing
// is persisted and nothing here is an error-control path.
package notify

import (
	"sync"

	"alumni-portal/internal/pkg/logging"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

type Notification struct {
	ID   int64
	Text string
	Time string
	Kind Kind
}

const defaultLimit = 50

type Center struct {
	mu     sync.Mutex
	items  []Notification
	nextID int64
	limit  int
	log    *logging.Logger
}

func NewCenter(log *logging.Logger) *Center {
	return &Center{nextID: 1, limit: defaultLimit, log: log}
}

// Seed installs fixture notifications and moves the id sequence past them.
func (c *Center) Seed(items []Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]Notification(nil), items...)
	for _, n := range items {
		if n.ID >= c.nextID {
			c.nextID = n.ID + 1
		}
	}
}

func (c *Center) Push(kind Kind, text string) Notification {
	c.mu.Lock()
	n := Notification{ID: c.nextID, Text: text, Time: "Just now", Kind: kind}
	c.nextID++
	c.items = append([]Notification{n}, c.items...)
	if len(c.items) > c.limit {
		c.items = c.items[:c.limit]
	}
	c.mu.Unlock()

	if c.log != nil {
		c.log.Info("notification", "kind", string(kind), "text", text)
	}
	return n
}

// Recent returns up to n notifications, newest first.
func (c *Center) Recent(n int) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || n > len(c.items) {
		n = len(c.items)
	}
	out := make([]Notification, n)
	copy(out, c.items[:n])
	return out
}
