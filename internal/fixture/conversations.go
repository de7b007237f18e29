package fixture

import "alumni-portal/internal/domain/chat"

func Conversations() []chat.Conversation {
	return []chat.Conversation{
		{
			ID:             1,
			ParticipantIDs: [2]int64{AdminID, 1},
			Messages: []chat.Message{
				{ID: 1, AuthorID: 1, Content: "Hi! Thanks for reaching out. I'm doing great, Microsoft is an amazing place to work.", Timestamp: "1 day ago", Read: true, Type: chat.MessageText},
				{ID: 2, AuthorID: AdminID, Content: "That's great to hear, Adaora. We're planning an alumni event and would love for you to be a speaker. Would you be interested?", Timestamp: "23 hours ago", Read: true, Type: chat.MessageText},
				{ID: 3, AuthorID: 1, Content: "I'd be honored! Send me the details.", Timestamp: "15 hours ago", Read: false, Type: chat.MessageText},
			},
		},
		{
			ID:             2,
			ParticipantIDs: [2]int64{AdminID, 4},
			Messages: []chat.Message{
				{ID: 1, AuthorID: 4, Content: "Let's catch up soon.", Timestamp: "3 days ago", Read: true, Type: chat.MessageText},
			},
		},
		{
			ID:             3,
			ParticipantIDs: [2]int64{AdminID, 2},
			Messages: []chat.Message{
				{ID: 1, AuthorID: AdminID, Content: "Hi Dr. Nnadi, I saw your latest publication on federated learning. Incredible work!", Timestamp: "2 days ago", Read: true, Type: chat.MessageText},
				{ID: 2, AuthorID: 2, Content: "Thank you! I appreciate you reading it. It was a fascinating project.", Timestamp: "1 day ago", Read: true, Type: chat.MessageText},
				{ID: 3, AuthorID: AdminID, Content: "We'd love to feature it in our next alumni newsletter if you're open to it.", Timestamp: "1 day ago", Read: true, Type: chat.MessageText},
				{ID: 4, AuthorID: 2, Content: "Certainly. I can send over a summary.", Timestamp: "5 hours ago", Read: false, Type: chat.MessageText},
			},
		},
		{
			ID:             4,
			ParticipantIDs: [2]int64{AdminID, 6},
			Messages: []chat.Message{
				{ID: 1, AuthorID: AdminID, Content: "Hi Chukwudi, your post about Kubernetes was very insightful. Our team is considering a similar migration.", Timestamp: "4 days ago", Read: true, Type: chat.MessageText},
				{ID: 2, AuthorID: 6, Content: "Glad you found it helpful! Let me know if you have any specific questions. It's a game-changer.", Timestamp: "4 days ago", Read: true, Type: chat.MessageText},
			},
		},
	}
}
