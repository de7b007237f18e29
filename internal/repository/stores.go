package repository

import "alumni-portal/internal/domain/user"

// Stores bundles every in-memory store so seeding and wiring pass one value
// around instead of five.
type Stores struct {
	Admin         AdminStore
	Alumni        AlumniRepository
	Students      StudentRepository
	Posts         PostRepository
	Conversations ConversationRepository
}

func NewMemoryStores(admin user.User) *Stores {
	return &Stores{
		Admin:         NewMemoryAdminStore(admin),
		Alumni:        NewMemoryAlumniRepository(),
		Students:      NewMemoryStudentRepository(),
		Posts:         NewMemoryPostRepository(),
		Conversations: NewMemoryConversationRepository(),
	}
}

// MaxUserID returns the highest id across the shared user id space (alumni
// and students; the admin singleton holds id 0 and never grows).
func (s *Stores) MaxUserID() int64 {
	max := s.Alumni.MaxID()
	if sid := s.Students.MaxID(); sid > max {
		max = sid
	}
	return max
}
