package users

import (
	"errors"
	"sync"

	"nexus/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// Service serves the demo user directory and the acting-user snapshot.
type Service struct {
	mu         sync.RWMutex
	byUsername map[string]domain.User
	acting     string
}

func NewService() *Service {
	s := &Service{byUsername: make(map[string]domain.User)}
	for _, u := range seedUsers() {
		s.byUsername[u.Username] = u
	}
	s.acting = "arivera"
	return s
}

// Acting returns the current user's snapshot; callers copy author fields
// from it at submission time and never re-sync them.
func (s *Service) Acting() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byUsername[s.acting]
}

func (s *Service) GetByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byUsername[username]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u, nil
}
