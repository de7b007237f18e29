package repository

import (
	"strings"
	"sync"

	"alumni-portal/internal/domain/user"
)

type StudentRepository interface {
	List() []user.User
	Get(id int64) (user.User, bool)
	FindByEmail(email string) (user.User, bool)
	Insert(u user.User)
	Update(u user.User) bool
	MaxID() int64
	Version() uint64
}

type MemoryStudentRepository struct {
	mu      sync.RWMutex
	items   []user.User
	version uint64
}

func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{}
}

func (r *MemoryStudentRepository) List() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, len(r.items))
	copy(out, r.items)
	return out
}

func (r *MemoryStudentRepository) Get(id int64) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

func (r *MemoryStudentRepository) FindByEmail(email string) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return user.User{}, false
}

func (r *MemoryStudentRepository) Insert(u user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, u)
	r.version++
}

func (r *MemoryStudentRepository) Update(u user.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == u.ID {
			r.items[i] = u
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryStudentRepository) MaxID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, u := range r.items {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}

func (r *MemoryStudentRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
