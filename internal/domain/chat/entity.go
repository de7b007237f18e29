package chat

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageVoice MessageType = "voice"
)

type Message struct {
	ID        int64
	AuthorID  int64
	Content   string
	Timestamp string
	Read      bool
	Type      MessageType
	// Duration is set only for voice messages, formatted m:ss.
	Duration string
}

// Conversation is the unique message thread for an unordered pair of users.
type Conversation struct {
	ID             int64
	ParticipantIDs [2]int64
	Messages       []Message
}

func (c Conversation) HasParticipant(id int64) bool {
	return c.ParticipantIDs[0] == id || c.ParticipantIDs[1] == id
}

// OtherParticipant returns the participant that is not selfID. When selfID is
// not part of the pair the first participant is returned.
func (c Conversation) OtherParticipant(selfID int64) int64 {
	if c.ParticipantIDs[0] == selfID {
		return c.ParticipantIDs[1]
	}
	return c.ParticipantIDs[0]
}

func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}
