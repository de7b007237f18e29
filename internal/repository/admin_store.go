package repository

import (
	"sync"

	"alumni-portal/internal/domain/user"
)

// AdminStore holds the single administrator record. It exists so profile
// edits to the admin have one home instead of copies drifting apart.
type AdminStore interface {
	Get() user.User
	Update(u user.User)
	Version() uint64
}

type MemoryAdminStore struct {
	mu      sync.RWMutex
	item    user.User
	version uint64
}

func NewMemoryAdminStore(u user.User) *MemoryAdminStore {
	u.Role = user.RoleAdmin
	return &MemoryAdminStore{item: u}
}

func (s *MemoryAdminStore) Get() user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.item
}

func (s *MemoryAdminStore) Update(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.item.ID
	u.Role = user.RoleAdmin
	s.item = u
	s.version++
}

func (s *MemoryAdminStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
