// Package directory resolves user ids across the three identity sources.
package directory

import (
	"sync"

	"alumni-portal/internal/domain/user"
	"alumni-portal/internal/repository"
)

// UnknownName is what callers display when an id resolves to nothing.
// Absence is never an error here.
const UnknownName = "Unknown User"

type Service struct {
	stores *repository.Stores

	mu         sync.Mutex
	index      map[int64]user.Account
	adminVer   uint64
	alumniVer  uint64
	studentVer uint64
	primed     bool
}

func NewService(stores *repository.Stores) *Service {
	return &Service{stores: stores}
}

// Resolve probes the admin singleton, then alumni, then students. The probe
// order matters only in theory (the id space is unique), but it matches the
// documented contract.
func (s *Service) Resolve(id int64) (user.User, bool) {
	acct, ok := s.Account(id)
	if !ok {
		return user.User{}, false
	}
	return acct.Identity(), true
}

// Account returns the full tagged identity behind an id.
func (s *Service) Account(id int64) (user.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	acct, ok := s.index[id]
	return acct, ok
}

// DisplayName degrades to a placeholder for unknown ids so message and post
// rendering never fails on a missing author.
func (s *Service) DisplayName(id int64) string {
	u, ok := s.Resolve(id)
	if !ok {
		return UnknownName
	}
	return u.FullName()
}

// refreshLocked rebuilds the memoized index when any backing collection has
// changed since the last build.
func (s *Service) refreshLocked() {
	dv := s.stores.Admin.Version()
	av := s.stores.Alumni.Version()
	sv := s.stores.Students.Version()
	if s.primed && dv == s.adminVer && av == s.alumniVer && sv == s.studentVer {
		return
	}

	admin := s.stores.Admin.Get()
	index := make(map[int64]user.Account)
	index[admin.ID] = user.AdminAccount(admin)
	for _, rec := range s.stores.Alumni.List() {
		if _, taken := index[rec.ID]; taken {
			continue
		}
		index[rec.ID] = user.AlumnusAccount(rec)
	}
	for _, u := range s.stores.Students.List() {
		if _, taken := index[u.ID]; taken {
			continue
		}
		index[u.ID] = user.StudentAccount(u)
	}

	s.index = index
	s.adminVer = dv
	s.alumniVer = av
	s.studentVer = sv
	s.primed = true
}
