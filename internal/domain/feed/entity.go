package feed

type Comment struct {
	ID        int64
	AuthorID  int64
	Content   string
	Timestamp string
}

// Post is append-only: likes toggle and comments append, nothing is deleted.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	Timestamp string
	Likes     []int64
	Comments  []Comment
}

// LikedBy reports whether userID is in the likes set.
func (p Post) LikedBy(userID int64) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p Post) Clone() Post {
	out := p
	out.Likes = append([]int64(nil), p.Likes...)
	out.Comments = append([]Comment(nil), p.Comments...)
	return out
}
