// Package chat manages direct-message conversations, unread tracking and the
// auto-reply simulator that stands in for the other participant.
package chat

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"alumni-portal/internal/domain/chat"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/scheduler"
	"alumni-portal/internal/usecase/directory"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidDuration      = errors.New("voice note duration must be m:ss")
	ErrEmptyMessage         = errors.New("message content is empty")
)

// CannedReplies is the fixed pool the simulator draws from.
var CannedReplies = []string{
	"That's interesting!",
	"Thanks for letting me know.",
	"I'll get back to you soon.",
	"Okay, sounds good.",
	"Got it.",
}

var durationPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

type TypingInfo struct {
	ConversationID  int64
	ParticipantName string
}

// Config carries the simulator timings. The reply fires at a uniformly
// random point inside [ReplyMin, ReplyMax].
type Config struct {
	TypingDelay time.Duration
	ReplyMin    time.Duration
	ReplyMax    time.Duration
	AutoReply   bool
}

type Service struct {
	conversations repository.ConversationRepository
	resolver      *directory.Service
	sched         *scheduler.Scheduler
	log           *logging.Logger
	cfg           Config

	mu       sync.Mutex
	activeID int64
	typing   *TypingInfo
	rng      *rand.Rand
}

func NewService(conversations repository.ConversationRepository, resolver *directory.Service, sched *scheduler.Scheduler, cfg Config, log *logging.Logger) *Service {
	return &Service{
		conversations: conversations,
		resolver:      resolver,
		sched:         sched,
		cfg:           cfg,
		log:           log,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ForUser lists the conversations the user participates in.
func (s *Service) ForUser(userID int64) []chat.Conversation {
	out := make([]chat.Conversation, 0)
	for _, c := range s.conversations.List() {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out
}

// Start returns the conversation for the unordered pair (selfID, otherID),
// creating it only when no existing one contains both ids. The conversation
// becomes active and its messages are marked read.
func (s *Service) Start(selfID, otherID int64) (chat.Conversation, error) {
	conv, ok := s.conversations.FindByPair(selfID, otherID)
	if !ok {
		conv = chat.Conversation{
			ID:             s.conversations.MaxID() + 1,
			ParticipantIDs: [2]int64{selfID, otherID},
			Messages:       []chat.Message{},
		}
		s.conversations.Insert(conv)
		s.log.CommandLog("start_conversation", selfID, nil)
	}

	s.SetActive(conv.ID)
	conv, _ = s.conversations.Get(conv.ID)
	return conv, nil
}

// Send appends a text message. The sender's own message is born read; the
// simulator then impersonates the other participant.
func (s *Service) Send(conversationID, authorID int64, content string) (chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, ErrEmptyMessage
	}
	return s.append(conversationID, authorID, chat.Message{
		AuthorID:  authorID,
		Content:   content,
		Timestamp: "Just now",
		Read:      true,
		Type:      chat.MessageText,
	})
}

// SendVoice appends a mock voice note; duration is the m:ss display string.
func (s *Service) SendVoice(conversationID, authorID int64, duration string) (chat.Message, error) {
	if !durationPattern.MatchString(duration) {
		return chat.Message{}, ErrInvalidDuration
	}
	return s.append(conversationID, authorID, chat.Message{
		AuthorID:  authorID,
		Content:   "Voice Note",
		Timestamp: "Just now",
		Read:      true,
		Type:      chat.MessageVoice,
		Duration:  duration,
	})
}

func (s *Service) append(conversationID, authorID int64, msg chat.Message) (chat.Message, error) {
	msg, ok := s.conversations.AppendMessage(conversationID, msg)
	if !ok {
		return chat.Message{}, ErrConversationNotFound
	}
	s.log.CommandLog("send_message", authorID, nil)

	if s.cfg.AutoReply {
		s.scheduleReply(conversationID, authorID)
	}
	return msg, nil
}

// MarkRead flags every message in the conversation as read. Missing
// conversations are ignored; read state has no one to report to.
func (s *Service) MarkRead(conversationID int64) {
	s.conversations.MarkAllRead(conversationID)
}

// SetActive makes a conversation the open one and marks it read; 0 clears
// the selection.
func (s *Service) SetActive(conversationID int64) {
	s.mu.Lock()
	s.activeID = conversationID
	s.mu.Unlock()
	if conversationID != 0 {
		s.MarkRead(conversationID)
	}
}

func (s *Service) Active() (chat.Conversation, bool) {
	s.mu.Lock()
	id := s.activeID
	s.mu.Unlock()
	if id == 0 {
		return chat.Conversation{}, false
	}
	return s.conversations.Get(id)
}

// Typing reports the pending typing indicator, if any.
func (s *Service) Typing() (TypingInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.typing == nil {
		return TypingInfo{}, false
	}
	return *s.typing, true
}

// UnreadCount counts conversations whose last message is unread and was
// authored by someone other than userID.
func (s *Service) UnreadCount(userID int64) int {
	n := 0
	for _, c := range s.conversations.List() {
		last, ok := c.LastMessage()
		if ok && last.AuthorID != userID && !last.Read {
			n++
		}
	}
	return n
}

// CancelPending drops every timer owned by a conversation; used when the
// conversation is torn down.
func (s *Service) CancelPending(conversationID int64) {
	s.sched.Cancel(conversationID)
	s.mu.Lock()
	if s.typing != nil && s.typing.ConversationID == conversationID {
		s.typing = nil
	}
	s.mu.Unlock()
}

// Close stops all simulator activity; sending afterwards still works but no
// replies arrive.
func (s *Service) Close() {
	s.sched.Close()
	s.mu.Lock()
	s.typing = nil
	s.mu.Unlock()
}

// scheduleReply arms the two simulator timers: a typing indicator shortly
// after the send, then a canned reply inside the configured window. Both are
// keyed by conversation id and re-check existence before touching state, so
// a conversation deleted in the meantime absorbs the timers silently.
func (s *Service) scheduleReply(conversationID, authorID int64) {
	conv, ok := s.conversations.Get(conversationID)
	if !ok {
		return
	}
	otherID := conv.OtherParticipant(authorID)
	other, ok := s.resolver.Resolve(otherID)
	if !ok {
		// Nobody to impersonate.
		return
	}

	s.sched.After(conversationID, s.cfg.TypingDelay, func() {
		if _, ok := s.conversations.Get(conversationID); !ok {
			return
		}
		s.mu.Lock()
		s.typing = &TypingInfo{ConversationID: conversationID, ParticipantName: other.FirstName}
		s.mu.Unlock()
	})

	s.sched.After(conversationID, s.replyDelay(), func() {
		s.mu.Lock()
		if s.typing != nil && s.typing.ConversationID == conversationID {
			s.typing = nil
		}
		reply := CannedReplies[s.rng.Intn(len(CannedReplies))]
		s.mu.Unlock()

		// AppendMessage is a no-op when the conversation was deleted in
		// the meantime.
		if _, ok := s.conversations.AppendMessage(conversationID, chat.Message{
			AuthorID:  otherID,
			Content:   reply,
			Timestamp: "Just now",
			Read:      false,
			Type:      chat.MessageText,
		}); !ok {
			return
		}
		s.log.Debug("auto-reply delivered", "conversation_id", conversationID, "author_id", otherID)
	})
}

func (s *Service) replyDelay() time.Duration {
	window := s.cfg.ReplyMax - s.cfg.ReplyMin
	if window <= 0 {
		return s.cfg.ReplyMin
	}
	s.mu.Lock()
	jitter := time.Duration(s.rng.Int63n(int64(window)))
	s.mu.Unlock()
	return s.cfg.ReplyMin + jitter
}
