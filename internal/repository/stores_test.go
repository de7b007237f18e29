package repository

import (
	"sync"
	"testing"

	"alumni-portal/internal/domain/chat"
	"alumni-portal/internal/domain/user"
)

func sampleRecord(id int64, email string) user.AlumniRecord {
	return user.AlumniRecord{
		User:   user.User{ID: id, FirstName: "Test", LastName: "User", Email: email, Role: user.RoleAlumnus},
		Skills: []string{"Go"},
	}
}

func TestMemoryAlumniRepository_SnapshotsDoNotAlias(t *testing.T) {
	repo := NewMemoryAlumniRepository()
	repo.Insert(sampleRecord(1, "a@example.com"))

	got, _ := repo.Get(1)
	got.Skills[0] = "mutated"

	fresh, _ := repo.Get(1)
	if fresh.Skills[0] != "Go" {
		t.Fatalf("stored record aliased a returned snapshot")
	}
}

func TestMemoryAlumniRepository_FindByEmailCaseInsensitive(t *testing.T) {
	repo := NewMemoryAlumniRepository()
	repo.Insert(sampleRecord(1, "Ada@Example.com"))

	if _, ok := repo.FindByEmail("ada@example.COM"); !ok {
		t.Fatalf("case-insensitive lookup failed")
	}
	if _, ok := repo.FindByEmail("missing@example.com"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestMemoryAlumniRepository_VersionTracksMutations(t *testing.T) {
	repo := NewMemoryAlumniRepository()
	v0 := repo.Version()

	repo.Insert(sampleRecord(1, "a@example.com"))
	if repo.Version() == v0 {
		t.Fatalf("insert must bump version")
	}

	v1 := repo.Version()
	repo.List()
	if _, ok := repo.Get(1); !ok {
		t.Fatalf("get failed")
	}
	if repo.Version() != v1 {
		t.Fatalf("reads must not bump version")
	}

	if !repo.Delete(1) {
		t.Fatalf("delete failed")
	}
	if repo.Version() == v1 {
		t.Fatalf("delete must bump version")
	}
}

func TestMemoryAlumniRepository_MaxIDEmpty(t *testing.T) {
	repo := NewMemoryAlumniRepository()
	if got := repo.MaxID(); got != 0 {
		t.Fatalf("expected 0 on empty store, got %d", got)
	}
}

func TestMemoryConversationRepository_FindByPairUnordered(t *testing.T) {
	repo := NewMemoryConversationRepository()
	repo.Insert(chat.Conversation{ID: 1, ParticipantIDs: [2]int64{0, 5}})

	if _, ok := repo.FindByPair(5, 0); !ok {
		t.Fatalf("reversed pair lookup failed")
	}
	if _, ok := repo.FindByPair(0, 5); !ok {
		t.Fatalf("ordered pair lookup failed")
	}
	if _, ok := repo.FindByPair(0, 6); ok {
		t.Fatalf("unexpected hit for a foreign pair")
	}
}

func TestMemoryConversationRepository_AppendMessageAllocatesID(t *testing.T) {
	repo := NewMemoryConversationRepository()
	repo.Insert(chat.Conversation{ID: 1, ParticipantIDs: [2]int64{0, 1}, Messages: []chat.Message{{ID: 3}}})

	msg, ok := repo.AppendMessage(1, chat.Message{AuthorID: 0, Content: "hi"})
	if !ok {
		t.Fatalf("append failed")
	}
	if msg.ID != 4 {
		t.Fatalf("expected id 4, got %d", msg.ID)
	}
	if _, ok := repo.AppendMessage(99, chat.Message{Content: "lost"}); ok {
		t.Fatalf("append to a missing conversation must report absence")
	}
}

func TestMemoryConversationRepository_ConcurrentAppendsKeepEveryMessage(t *testing.T) {
	repo := NewMemoryConversationRepository()
	repo.Insert(chat.Conversation{ID: 1, ParticipantIDs: [2]int64{0, 1}})

	const writers = 8
	const perWriter = 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(author int64) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, ok := repo.AppendMessage(1, chat.Message{AuthorID: author, Content: "m"}); !ok {
					t.Errorf("append failed for author %d", author)
					return
				}
			}
		}(int64(w))
	}
	wg.Wait()

	conv, _ := repo.Get(1)
	if got := len(conv.Messages); got != writers*perWriter {
		t.Fatalf("lost messages: have %d, want %d", got, writers*perWriter)
	}
	seen := make(map[int64]bool, len(conv.Messages))
	for _, m := range conv.Messages {
		if seen[m.ID] {
			t.Fatalf("duplicate message id %d", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestMemoryConversationRepository_MarkAllRead(t *testing.T) {
	repo := NewMemoryConversationRepository()
	repo.Insert(chat.Conversation{ID: 1, ParticipantIDs: [2]int64{0, 1}, Messages: []chat.Message{
		{ID: 1, Read: true}, {ID: 2, Read: false},
	}})

	if !repo.MarkAllRead(1) {
		t.Fatalf("mark read failed")
	}
	conv, _ := repo.Get(1)
	for _, m := range conv.Messages {
		if !m.Read {
			t.Fatalf("message %d still unread", m.ID)
		}
	}
	if repo.MarkAllRead(99) {
		t.Fatalf("missing conversation must report absence")
	}
}

func TestMemoryConversationRepository_MaxMessageIDGlobal(t *testing.T) {
	repo := NewMemoryConversationRepository()
	repo.Insert(chat.Conversation{ID: 1, ParticipantIDs: [2]int64{0, 1}, Messages: []chat.Message{{ID: 3}}})
	repo.Insert(chat.Conversation{ID: 2, ParticipantIDs: [2]int64{0, 2}, Messages: []chat.Message{{ID: 7}}})

	if got := repo.MaxMessageID(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestMemoryAdminStore_UpdatePreservesIdentity(t *testing.T) {
	store := NewMemoryAdminStore(user.User{ID: 0, FirstName: "Admin", Role: user.RoleAdmin})

	store.Update(user.User{ID: 42, FirstName: "Renamed", Role: user.RoleStudent})
	got := store.Get()
	if got.ID != 0 || got.Role != user.RoleAdmin {
		t.Fatalf("id or role drifted: %+v", got)
	}
	if got.FirstName != "Renamed" {
		t.Fatalf("editable field lost: %+v", got)
	}
}

func TestStores_MaxUserIDSpansSources(t *testing.T) {
	st := NewMemoryStores(user.User{ID: 0, Role: user.RoleAdmin})
	st.Alumni.Insert(sampleRecord(6, "a@example.com"))
	st.Students.Insert(user.User{ID: 102, Role: user.RoleStudent})

	if got := st.MaxUserID(); got != 102 {
		t.Fatalf("expected 102, got %d", got)
	}
}
