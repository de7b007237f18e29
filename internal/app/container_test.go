package app

import (
	"context"
	"testing"

	"alumni-portal/internal/config"
	"alumni-portal/internal/fixture"
	"alumni-portal/internal/pkg/clock"
	"alumni-portal/internal/pkg/logging"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	cfg := config.Config{}
	cfg.Sim.AutoReply = false
	c, err := NewContainer(cfg, clock.Instant{}, logging.Discard())
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewContainer_SeedsEverything(t *testing.T) {
	c := newTestContainer(t)

	if got := len(c.Stores.Alumni.List()); got != 6 {
		t.Fatalf("expected 6 alumni, got %d", got)
	}
	if got := len(c.Stores.Students.List()); got != 2 {
		t.Fatalf("expected 2 students, got %d", got)
	}
	if got := len(c.Stores.Posts.List()); got != 5 {
		t.Fatalf("expected 5 posts, got %d", got)
	}
	if got := len(c.Stores.Conversations.List()); got != 4 {
		t.Fatalf("expected 4 conversations, got %d", got)
	}
	if got := len(c.Notify.Recent(0)); got != 4 {
		t.Fatalf("expected 4 seeded notifications, got %d", got)
	}
	if c.Stores.Admin.Get().Email != fixture.AdminEmail {
		t.Fatalf("admin not seeded")
	}
}

func TestContainer_EndToEndSession(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	sess, err := c.Auth.Login(ctx, fixture.AdminEmail, "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sum := c.Dashboard()
	if sum.TotalAlumni != 6 {
		t.Fatalf("dashboard total %d", sum.TotalAlumni)
	}

	conv, err := c.Chat.Start(sess.Account.Identity().ID, 1)
	if err != nil {
		t.Fatalf("start conversation: %v", err)
	}
	if _, err := c.Chat.Send(conv.ID, sess.Account.Identity().ID, "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	c.Auth.Logout()
	if _, ok := c.Auth.Current(); ok {
		t.Fatalf("session survived logout")
	}
}

func TestContainer_Close_Idempotent(t *testing.T) {
	c := newTestContainer(t)
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
