package repository

import (
	"sync"

	"alumni-portal/internal/domain/feed"
)

// PostRepository keeps posts most-recent-first.
type PostRepository interface {
	List() []feed.Post
	Get(id int64) (feed.Post, bool)
	Prepend(p feed.Post)
	Update(p feed.Post) bool
	MaxID() int64
	MaxCommentID() int64
	Version() uint64
}

type MemoryPostRepository struct {
	mu      sync.RWMutex
	items   []feed.Post
	version uint64
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{}
}

func (r *MemoryPostRepository) List() []feed.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]feed.Post, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out
}

func (r *MemoryPostRepository) Get(id int64) (feed.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return feed.Post{}, false
}

func (r *MemoryPostRepository) Prepend(p feed.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]feed.Post{p.Clone()}, r.items...)
	r.version++
}

func (r *MemoryPostRepository) Update(p feed.Post) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p.Clone()
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryPostRepository) MaxID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, p := range r.items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// MaxCommentID scans all posts; comment ids share one sequence.
func (r *MemoryPostRepository) MaxCommentID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, p := range r.items {
		for _, c := range p.Comments {
			if c.ID > max {
				max = c.ID
			}
		}
	}
	return max
}

func (r *MemoryPostRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
