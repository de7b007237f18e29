// Package feed manages the community posts: like toggles, comments and new
// posts. All three are synchronous in-memory mutations.
package feed

import (
	"errors"
	"strings"

	"alumni-portal/internal/domain/feed"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

type Service struct {
	posts  repository.PostRepository
	center *notify.Center
	log    *logging.Logger
}

func NewService(posts repository.PostRepository, center *notify.Center, log *logging.Logger) *Service {
	return &Service{posts: posts, center: center, log: log}
}

// Posts returns the feed, most-recent-first.
func (s *Service) Posts() []feed.Post {
	return s.posts.List()
}

// Like toggles userID's membership in the post's likes set: a second call
// with the same arguments undoes the first.
func (s *Service) Like(postID, userID int64) error {
	p, ok := s.posts.Get(postID)
	if !ok {
		return ErrPostNotFound
	}

	if p.LikedBy(userID) {
		kept := p.Likes[:0]
		for _, id := range p.Likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		p.Likes = kept
	} else {
		p.Likes = append(p.Likes, userID)
	}
	s.posts.Update(p)
	return nil
}

// Comment appends to the post's comment list. Content is taken as-is; the
// feed has no length or content rules.
func (s *Service) Comment(postID, authorID int64, content string) (feed.Comment, error) {
	p, ok := s.posts.Get(postID)
	if !ok {
		return feed.Comment{}, ErrPostNotFound
	}

	c := feed.Comment{
		ID:        s.posts.MaxCommentID() + 1,
		AuthorID:  authorID,
		Content:   content,
		Timestamp: "Just now",
	}
	p.Comments = append(p.Comments, c)
	s.posts.Update(p)
	s.log.CommandLog("add_comment", authorID, nil)
	return c, nil
}

// CreatePost prepends so the feed stays most-recent-first.
func (s *Service) CreatePost(authorID int64, content string) (feed.Post, error) {
	if strings.TrimSpace(content) == "" {
		return feed.Post{}, errors.New("post content is empty")
	}

	p := feed.Post{
		ID:        s.posts.MaxID() + 1,
		AuthorID:  authorID,
		Content:   content,
		Timestamp: "Just now",
		Likes:     []int64{},
		Comments:  []feed.Comment{},
	}
	s.posts.Prepend(p)

	s.center.Push(notify.KindSuccess, "Post created successfully!")
	s.log.CommandLog("create_post", authorID, nil)
	return p, nil
}
