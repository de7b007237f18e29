package repository

import (
	"sync"

	"alumni-portal/internal/domain/chat"
)

type ConversationRepository interface {
	List() []chat.Conversation
	Get(id int64) (chat.Conversation, bool)
	// FindByPair looks up the conversation for an unordered participant pair.
	FindByPair(a, b int64) (chat.Conversation, bool)
	Insert(c chat.Conversation)
	Update(c chat.Conversation) bool
	Delete(id int64) bool
	// AppendMessage allocates the next message id and appends in one
	// critical section. Message appends are read-modify-write sequences,
	// and the auto-reply timers deliver from their own goroutine; doing
	// the compound operation under the store lock keeps interleaved
	// appends from overwriting each other or minting duplicate ids.
	AppendMessage(conversationID int64, msg chat.Message) (chat.Message, bool)
	// MarkAllRead flags every message in the conversation read, atomically
	// with respect to concurrent appends.
	MarkAllRead(conversationID int64) bool
	MaxID() int64
	MaxMessageID() int64
	Version() uint64
}

type MemoryConversationRepository struct {
	mu      sync.RWMutex
	items   []chat.Conversation
	version uint64
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{}
}

func (r *MemoryConversationRepository) List() []chat.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]chat.Conversation, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c.Clone())
	}
	return out
}

func (r *MemoryConversationRepository) Get(id int64) (chat.Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return chat.Conversation{}, false
}

func (r *MemoryConversationRepository) FindByPair(a, b int64) (chat.Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.HasParticipant(a) && c.HasParticipant(b) {
			return c.Clone(), true
		}
	}
	return chat.Conversation{}, false
}

func (r *MemoryConversationRepository) Insert(c chat.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c.Clone())
	r.version++
}

func (r *MemoryConversationRepository) Update(c chat.Conversation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = c.Clone()
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryConversationRepository) Delete(id int64) bool {
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

func (r *MemoryConversationRepository) AppendMessage(conversationID int64, msg chat.Message) (chat.Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == conversationID {
			msg.ID = r.maxMessageIDLocked() + 1
			r.items[i].Messages = append(r.items[i].Messages, msg)
			r.version++
			return msg, true
		}
	}
	return chat.Message{}, false
}

func (r *MemoryConversationRepository) MarkAllRead(conversationID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == conversationID {
			for j := range r.items[i].Messages {
				r.items[i].Messages[j].Read = true
			}
			r.version++
			return true
		}
	}
	return false
}

func (r *MemoryConversationRepository) MaxID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, c := range r.items {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

func (r *MemoryConversationRepository) MaxMessageID() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxMessageIDLocked()
}

func (r *MemoryConversationRepository) maxMessageIDLocked() int64 {
	var max int64
	for _, c := range r.items {
		for _, m := range c.Messages {
			if m.ID > max {
				max = m.ID
			}
		}
	}
	return max
}

func (r *MemoryConversationRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
