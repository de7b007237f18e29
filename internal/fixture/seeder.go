// Package fixture holds the static seed collections that form the initial
// in-memory state. Every accessor returns fresh copies; seeded stores never
// alias fixture data.
package fixture

import (
	"fmt"

	"alumni-portal/internal/repository"
)

type Seeder interface {
	Name() string
	Run(st *repository.Stores) error
}

func Defaults() []Seeder {
	return []Seeder{
		AlumniSeeder{},
		StudentSeeder{},
		PostSeeder{},
		ConversationSeeder{},
	}
}

// Seed runs every seeder in order against the given stores.
func Seed(st *repository.Stores, seeders []Seeder) error {
	for _, s := range seeders {
		if err := s.Run(st); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
	}
	return nil
}

type AlumniSeeder struct{}

func (AlumniSeeder) Name() string { return "alumni" }

func (AlumniSeeder) Run(st *repository.Stores) error {
	for _, rec := range Alumni() {
		st.Alumni.Insert(rec)
	}
	return nil
}

type StudentSeeder struct{}

func (StudentSeeder) Name() string { return "students" }

func (StudentSeeder) Run(st *repository.Stores) error {
	for _, u := range Students() {
		st.Students.Insert(u)
	}
	return nil
}

type PostSeeder struct{}

func (PostSeeder) Name() string { return "posts" }

func (PostSeeder) Run(st *repository.Stores) error {
	posts := Posts()
	// Prepend in reverse so the store ends up most-recent-first, matching
	// the fixture order.
	for i := len(posts) - 1; i >= 0; i-- {
		st.Posts.Prepend(posts[i])
	}
	return nil
}

type ConversationSeeder struct{}

func (ConversationSeeder) Name() string { return "conversations" }

func (ConversationSeeder) Run(st *repository.Stores) error {
	for _, c := range Conversations() {
		st.Conversations.Insert(c)
	}
	return nil
}
