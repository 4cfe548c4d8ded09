package feed

import (
	"errors"
	"slices"
	"sync"

	"nexus/internal/domain"
)

var ErrPostNotFound = errors.New("post not found")

// Store keeps the feed in memory, newest first. The demo ships with mock
// records only; nothing is persisted.
type Store struct {
	mu    sync.RWMutex
	posts []*domain.Post
}

func NewStore(seed []*domain.Post) *Store {
	return &Store{posts: slices.Clone(seed)}
}

// Publish takes ownership of an assembled post and prepends it.
func (s *Store) Publish(post *domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*domain.Post{post}, s.posts...)
}

// List returns feed entries newest first, optionally filtered to posts
// carrying a hashtag.
func (s *Store) List(tag string) []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if tag != "" && !slices.Contains(p.Hashtags, tag) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (s *Store) Get(id string) (domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return *p, nil
		}
	}
	return domain.Post{}, ErrPostNotFound
}

func (s *Store) Like(id string) (domain.Post, error) {
	return s.bump(id, func(p *domain.Post) { p.Likes++ })
}

func (s *Store) Repost(id string) (domain.Post, error) {
	return s.bump(id, func(p *domain.Post) { p.Reposts++ })
}

func (s *Store) bump(id string, apply func(*domain.Post)) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			apply(p)
			return *p, nil
		}
	}
	return domain.Post{}, ErrPostNotFound
}
