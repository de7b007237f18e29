package chat

import (
	"errors"
	"testing"
	"time"

	"alumni-portal/internal/domain/chat"
	"alumni-portal/internal/fixture"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/scheduler"
	"alumni-portal/internal/usecase/directory"
)

func newTestService(t *testing.T, cfg Config) (*Service, *repository.Stores) {
	t.Helper()
	stores := repository.NewMemoryStores(fixture.Admin())
	if err := fixture.Seed(stores, fixture.Defaults()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	sched := scheduler.New()
	t.Cleanup(sched.Close)
	resolver := directory.NewService(stores)
	return NewService(stores.Conversations, resolver, sched, cfg, logging.Discard()), stores
}

func silentConfig() Config {
	return Config{AutoReply: false}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", d)
}

func TestService_Start_ReusesExistingPairUnordered(t *testing.T) {
	s, stores := newTestService(t, silentConfig())

	// The seed already holds a conversation between users 0 and 1.
	existing, ok := stores.Conversations.FindByPair(1, fixture.AdminID)
	if !ok {
		t.Fatalf("expected seeded conversation for the pair")
	}

	conv, err := s.Start(1, fixture.AdminID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if conv.ID != existing.ID {
		t.Fatalf("expected reuse of conversation %d, got %d", existing.ID, conv.ID)
	}
	if got := stores.Conversations.MaxID(); got != 4 {
		t.Fatalf("no new conversation expected, max id %d", got)
	}
}

func TestService_Start_CreatesForNewPair(t *testing.T) {
	s, stores := newTestService(t, silentConfig())

	conv, err := s.Start(101, 102)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if conv.ID != 5 {
		t.Fatalf("expected new conversation id 5, got %d", conv.ID)
	}
	if len(conv.Messages) != 0 {
		t.Fatalf("new conversation must start empty")
	}
	if _, ok := stores.Conversations.Get(5); !ok {
		t.Fatalf("conversation not stored")
	}
	if active, ok := s.Active(); !ok || active.ID != 5 {
		t.Fatalf("new conversation must become active")
	}
}

func TestService_Start_MarksExistingRead(t *testing.T) {
	s, stores := newTestService(t, silentConfig())

	before := s.UnreadCount(fixture.AdminID)
	if before == 0 {
		t.Fatalf("fixture should seed unread conversations")
	}

	// Conversation 1's last message is from user 1 and unread.
	if _, err := s.Start(fixture.AdminID, 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	conv, _ := stores.Conversations.Get(1)
	for _, m := range conv.Messages {
		if !m.Read {
			t.Fatalf("message %d still unread", m.ID)
		}
	}
	if got := s.UnreadCount(fixture.AdminID); got != before-1 {
		t.Fatalf("expected unread count %d, got %d", before-1, got)
	}
}

func TestService_UnreadCount_Seeded(t *testing.T) {
	s, _ := newTestService(t, silentConfig())
	if got := s.UnreadCount(fixture.AdminID); got != 2 {
		t.Fatalf("expected 2 unread conversations for the admin, got %d", got)
	}
}

func TestService_Send_EmptyContent(t *testing.T) {
	s, _ := newTestService(t, silentConfig())
	if _, err := s.Send(1, fixture.AdminID, "  "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestService_Send_UnknownConversation(t *testing.T) {
	s, _ := newTestService(t, silentConfig())
	if _, err := s.Send(999, fixture.AdminID, "hello"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestService_Send_AppendsReadMessage(t *testing.T) {
	s, stores := newTestService(t, silentConfig())

	msg, err := s.Send(1, fixture.AdminID, "hello there")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !msg.Read || msg.Type != chat.MessageText {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.ID != stores.Conversations.MaxMessageID() {
		t.Fatalf("expected the freshest message id, got %d", msg.ID)
	}
}

func TestService_SendVoice_ValidatesDuration(t *testing.T) {
	s, _ := newTestService(t, silentConfig())

	if _, err := s.SendVoice(1, fixture.AdminID, "125"); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	msg, err := s.SendVoice(1, fixture.AdminID, "0:42")
	if err != nil {
		t.Fatalf("send voice: %v", err)
	}
	if msg.Content != "Voice Note" || msg.Duration != "0:42" || msg.Type != chat.MessageVoice {
		t.Fatalf("unexpected voice message: %+v", msg)
	}
}

func TestService_AutoReply_DeliversCannedReply(t *testing.T) {
	s, stores := newTestService(t, Config{
		TypingDelay: time.Millisecond,
		ReplyMin:    5 * time.Millisecond,
		ReplyMax:    10 * time.Millisecond,
		AutoReply:   true,
	})

	msg, err := s.Send(1, fixture.AdminID, "are you there?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	waitFor(t, time.Second, func() bool {
		conv, _ := stores.Conversations.Get(1)
		last, ok := conv.LastMessage()
		return ok && last.ID > msg.ID
	})

	conv, _ := stores.Conversations.Get(1)
	last, _ := conv.LastMessage()
	if last.AuthorID != 1 {
		t.Fatalf("reply must come from the other participant, got %d", last.AuthorID)
	}
	if last.Read {
		t.Fatalf("reply must arrive unread")
	}
	found := false
	for _, c := range CannedReplies {
		if last.Content == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("unexpected reply content %q", last.Content)
	}
}

func TestService_AutoReply_TypingIndicatorAppearsAndClears(t *testing.T) {
	s, stores := newTestService(t, Config{
		TypingDelay: time.Millisecond,
		ReplyMin:    20 * time.Millisecond,
		ReplyMax:    25 * time.Millisecond,
		AutoReply:   true,
	})

	if _, err := s.Send(1, fixture.AdminID, "ping"); err != nil {
		t.Fatalf("send: %v", err)
	}

	waitFor(t, time.Second, func() bool {
		info, ok := s.Typing()
		return ok && info.ConversationID == 1 && info.ParticipantName == "Adaora"
	})

	waitFor(t, time.Second, func() bool {
		conv, _ := stores.Conversations.Get(1)
		if len(conv.Messages) == 0 {
			return false
		}
		_, typing := s.Typing()
		last, _ := conv.LastMessage()
		return last.AuthorID == 1 && !typing
	})
}

func TestService_AutoReply_InterleavedSendsLoseNothing(t *testing.T) {
	s, stores := newTestService(t, Config{
		TypingDelay: 0,
		ReplyMin:    0,
		ReplyMax:    time.Millisecond,
		AutoReply:   true,
	})

	// Replies land from the timer goroutine while the user keeps sending;
	// every send and every delivered reply must survive the interleaving.
	const sends = 20
	for i := 0; i < sends; i++ {
		if _, err := s.Send(1, fixture.AdminID, "ping"); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	waitFor(t, time.Second, func() bool {
		return s.sched.Pending(1) == 0
	})
	time.Sleep(20 * time.Millisecond)

	conv, _ := stores.Conversations.Get(1)
	sent := 0
	seen := make(map[int64]bool, len(conv.Messages))
	for _, m := range conv.Messages {
		if seen[m.ID] {
			t.Fatalf("duplicate message id %d", m.ID)
		}
		seen[m.ID] = true
		if m.AuthorID == fixture.AdminID && m.Content == "ping" {
			sent++
		}
	}
	if sent != sends {
		t.Fatalf("lost sends: have %d, want %d", sent, sends)
	}
}

func TestService_AutoReply_DeletedConversationAbsorbsTimers(t *testing.T) {
	s, stores := newTestService(t, Config{
		TypingDelay: time.Millisecond,
		ReplyMin:    10 * time.Millisecond,
		ReplyMax:    15 * time.Millisecond,
		AutoReply:   true,
	})

	if _, err := s.Send(1, fixture.AdminID, "going away"); err != nil {
		t.Fatalf("send: %v", err)
	}
	version := stores.Conversations.Version()
	stores.Conversations.Delete(1)

	time.Sleep(50 * time.Millisecond)
	if _, ok := stores.Conversations.Get(1); ok {
		t.Fatalf("conversation resurrected by a stale timer")
	}
	// Only the delete itself may have bumped the version.
	if got := stores.Conversations.Version(); got != version+1 {
		t.Fatalf("stale timer mutated the store: version %d, want %d", got, version+1)
	}
}

func TestService_CancelPending_DropsTimersAndTyping(t *testing.T) {
	s, stores := newTestService(t, Config{
		TypingDelay: time.Millisecond,
		ReplyMin:    30 * time.Millisecond,
		ReplyMax:    35 * time.Millisecond,
		AutoReply:   true,
	})

	msg, err := s.Send(1, fixture.AdminID, "never mind")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	s.CancelPending(1)

	time.Sleep(80 * time.Millisecond)
	conv, _ := stores.Conversations.Get(1)
	last, _ := conv.LastMessage()
	if last.ID != msg.ID {
		t.Fatalf("reply arrived after cancel")
	}
	if _, ok := s.Typing(); ok {
		t.Fatalf("typing indicator survived cancel")
	}
}

func TestService_SetActive_ZeroClearsSelection(t *testing.T) {
	s, _ := newTestService(t, silentConfig())

	s.SetActive(1)
	if _, ok := s.Active(); !ok {
		t.Fatalf("expected an active conversation")
	}
	s.SetActive(0)
	if _, ok := s.Active(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestService_ForUser_FiltersByParticipant(t *testing.T) {
	s, _ := newTestService(t, silentConfig())

	for _, c := range s.ForUser(101) {
		if !c.HasParticipant(101) {
			t.Fatalf("conversation %d does not involve user 101", c.ID)
		}
	}
	if got := len(s.ForUser(fixture.AdminID)); got != 4 {
		t.Fatalf("admin participates in all 4 seeded conversations, got %d", got)
	}
}
