// Package scheduler runs delayed tasks grouped by a numeric key so every
// pending task for a key can be cancelled together. The chat auto-reply
// simulator keys its typing and reply timers by conversation id.
package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	key   int64
	timer *time.Timer
}

type Scheduler struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	closed  bool
}

func New() *Scheduler {
	return &Scheduler{entries: make(map[uuid.UUID]*entry)}
}

// After schedules fn to run once after d, returning a handle. The zero UUID
// is returned when the scheduler is already closed; fn is then never run.
func (s *Scheduler) After(key int64, d time.Duration, fn func()) uuid.UUID {
	if s == nil || fn == nil {
		return uuid.Nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return uuid.Nil
	}

	handle := uuid.New()
	s.entries[handle] = &entry{
		key: key,
		timer: time.AfterFunc(d, func() {
			s.mu.Lock()
			_, live := s.entries[handle]
			delete(s.entries, handle)
			closed := s.closed
			s.mu.Unlock()
			// A cancelled or closed scheduler must not deliver.
			if !live || closed {
				return
			}
			fn()
		}),
	}
	return handle
}

// Cancel stops every pending task scheduled under key.
func (s *Scheduler) Cancel(key int64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for handle, e := range s.entries {
		if e.key == key {
			e.timer.Stop()
			delete(s.entries, handle)
		}
	}
}

// Pending reports how many tasks are still scheduled under key.
func (s *Scheduler) Pending(key int64) int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if e.key == key {
			n++
		}
	}
	return n
}

// Close cancels everything and rejects further scheduling.
func (s *Scheduler) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for handle, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, handle)
	}
}
