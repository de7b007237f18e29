package repository

import (
	"sort"
	"strings"
	"sync"

	"alumni-portal/internal/domain/user"
)

// AlumniRepository is the read/write surface for alumni records. All
// implementations return deep copies so callers hold stable snapshots.
type AlumniRepository interface {
	List() []user.AlumniRecord
	Get(id int64) (user.AlumniRecord, bool)
	FindByEmail(email string) (user.AlumniRecord, bool)
	Insert(rec user.AlumniRecord)
	Update(rec user.AlumniRecord) bool
	Delete(id int64) bool
	MaxID() int64
	// Version increments on every mutation; memoized readers use it as an
	// invalidation key.
	Version() uint64
}

type MemoryAlumniRepository struct {
	mu      sync.RWMutex
	items   []user.AlumniRecord
	version uint64
}

func NewMemoryAlumniRepository() *MemoryAlumniRepository {
	return &MemoryAlumniRepository{}
}

func (r *MemoryAlumniRepository) List() []user.AlumniRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.AlumniRecord, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec.Clone())
	}
	return out
}

func (r *MemoryAlumniRepository) Get(id int64) (user.AlumniRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.items {
		if rec.ID == id {
			return rec.Clone(), true
		}
	}
	return user.AlumniRecord{}, false
}

// FindByEmail matches case-insensitively.
func (r *MemoryAlumniRepository) FindByEmail(email string) (user.AlumniRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.items {
		if strings.EqualFold(rec.Email, email) {
			return rec.Clone(), true
		}
	}
	return user.AlumniRecord{}, false
}

func (r *MemoryAlumniRepository) Insert(rec user.AlumniRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, rec.Clone())
	r.version++
}

func (r *MemoryAlumniRepository) Update(rec user.AlumniRecord) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == rec.ID {
			r.items[i] = rec.Clone()
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryAlumniRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryAlumniRepository) MaxID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, rec := range r.items {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}

func (r *MemoryAlumniRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// SortedIDs is a test helper giving a deterministic view of the id space.
func (r *MemoryAlumniRepository) SortedIDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int64, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
