package feed

import (
	"errors"
	"testing"

	"alumni-portal/internal/fixture"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.Stores) {
	t.Helper()
	stores := repository.NewMemoryStores(fixture.Admin())
	if err := fixture.Seed(stores, fixture.Defaults()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	center := notify.NewCenter(logging.Discard())
	return NewService(stores.Posts, center, logging.Discard()), stores
}

func TestService_Like_TogglesBothWays(t *testing.T) {
	s, stores := newTestService(t)

	p, _ := stores.Posts.Get(1)
	before := len(p.Likes)

	if err := s.Like(1, fixture.AdminID); err != nil {
		t.Fatalf("like: %v", err)
	}
	p, _ = stores.Posts.Get(1)
	if len(p.Likes) != before+1 || !p.LikedBy(fixture.AdminID) {
		t.Fatalf("expected like added, got %v", p.Likes)
	}

	if err := s.Like(1, fixture.AdminID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	p, _ = stores.Posts.Get(1)
	if len(p.Likes) != before || p.LikedBy(fixture.AdminID) {
		t.Fatalf("expected like removed, got %v", p.Likes)
	}
}

func TestService_Like_PreservesOtherLikers(t *testing.T) {
	s, stores := newTestService(t)

	// Post 1 is already liked by user 1; unliking must keep the rest.
	if err := s.Like(1, 1); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	p, _ := stores.Posts.Get(1)
	if p.LikedBy(1) {
		t.Fatalf("user 1 still present")
	}
	for _, id := range []int64{2, 5, 6, 101} {
		if !p.LikedBy(id) {
			t.Fatalf("liker %d lost", id)
		}
	}
}

func TestService_Like_UnknownPost(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.Like(999, 1); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestService_Comment_AllocatesGlobalID(t *testing.T) {
	s, stores := newTestService(t)

	// Seed comments run through id 5 across all posts.
	c, err := s.Comment(2, fixture.AdminID, "Impressive work!")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if c.ID != 6 {
		t.Fatalf("expected comment id 6, got %d", c.ID)
	}
	if c.Timestamp != "Just now" {
		t.Fatalf("expected fresh timestamp, got %q", c.Timestamp)
	}
	p, _ := stores.Posts.Get(2)
	if len(p.Comments) != 1 || p.Comments[0].ID != 6 {
		t.Fatalf("comment not stored: %+v", p.Comments)
	}
}

func TestService_CreatePost_PrependsToFeed(t *testing.T) {
	s, _ := newTestService(t)

	p, err := s.CreatePost(fixture.AdminID, "Welcome to the new semester!")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if p.ID != 6 {
		t.Fatalf("expected post id 6, got %d", p.ID)
	}
	posts := s.Posts()
	if posts[0].ID != p.ID {
		t.Fatalf("new post must lead the feed, got id %d first", posts[0].ID)
	}
	if len(posts) != 6 {
		t.Fatalf("expected 6 posts, got %d", len(posts))
	}
}

func TestService_CreatePost_RejectsEmptyContent(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.CreatePost(fixture.AdminID, "   "); err == nil {
		t.Fatalf("expected error for blank content")
	}
}
