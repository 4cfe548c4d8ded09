package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus/internal/domain"
)

const defaultRecentLimit = 50

// Service is the fire-and-forget toast sink. Notify never blocks the
// caller's state machine: it records the toast and pushes it to whoever
// is listening, best-effort FIFO.
type Service struct {
	mu     sync.Mutex
	hub    *Hub
	recent []domain.Toast
	limit  int
}

func NewService(hub *Hub, limit int) *Service {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return &Service{hub: hub, limit: limit}
}

func (s *Service) Notify(message string, severity domain.ToastSeverity) {
	toast := domain.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.recent = append(s.recent, toast)
	if len(s.recent) > s.limit {
		s.recent = s.recent[len(s.recent)-s.limit:]
	}
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Broadcast(toast)
	}
}

// Recent returns buffered toasts, oldest first.
func (s *Service) Recent() []domain.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Toast, len(s.recent))
	copy(out, s.recent)
	return out
}
