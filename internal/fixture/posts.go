package fixture

import "alumni-portal/internal/domain/feed"

// Posts returns the seed feed, most-recent-first.
func Posts() []feed.Post {
	return []feed.Post{
		{
			ID:        1,
			AuthorID:  3,
			Content:   "Excited to announce that TechFlow Solutions has secured Series A funding! We're hiring for several roles, especially in product development. Check out our careers page or DM me if you're interested. #TechFlow #StartupLife #Hiring",
			Timestamp: "2 hours ago",
			Likes:     []int64{1, 2, 5, 6, 101},
			Comments: []feed.Comment{
				{ID: 1, AuthorID: 1, Content: "Huge congratulations, Chioma! This is amazing news.", Timestamp: "1 hour ago"},
				{ID: 2, AuthorID: 6, Content: "Well deserved! I'll definitely check out the open roles.", Timestamp: "30 minutes ago"},
			},
		},
		{
			ID:        2,
			AuthorID:  2,
			Content:   "Just published a new paper on federated learning models for healthcare data privacy. It's been a challenging but rewarding project. Grateful for my team at Google Research!",
			Timestamp: "1 day ago",
			Likes:     []int64{4, 5},
		},
		{
			ID:        3,
			AuthorID:  5,
			Content:   "Presenting my latest research on Data Science in education at the upcoming IEEE conference in Abuja. It's great to see so much innovation in the field. Any other alumni attending?",
			Timestamp: "2 days ago",
			Likes:     []int64{1, 2, 102},
			Comments: []feed.Comment{
				{ID: 3, AuthorID: 2, Content: "Fantastic, Ngozi! I'll be there. Let's connect.", Timestamp: "1 day ago"},
			},
		},
		{
			ID:        4,
			AuthorID:  6,
			Content:   "Just migrated our entire CI/CD pipeline to Kubernetes. What a learning curve! Happy to share some tips on managing stateful applications if anyone is interested. #DevOps #CloudNative",
			Timestamp: "3 days ago",
			Likes:     []int64{1, 3, 4},
		},
		{
			ID:        5,
			AuthorID:  1,
			Content:   "Found this old photo from our final year project defense. Good times! Missing the uni days. How is everyone doing?",
			Timestamp: "4 days ago",
			Likes:     []int64{2, 3, 4, 5, 6},
			Comments: []feed.Comment{
				{ID: 4, AuthorID: 3, Content: "Wow, what a throwback! We look so young 😂", Timestamp: "3 days ago"},
				{ID: 5, AuthorID: 2, Content: "I remember the stress of that day. Great memories though.", Timestamp: "3 days ago"},
			},
		},
	}
}
