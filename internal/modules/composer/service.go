package composer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus/internal/domain"
)

// Service manages composer instances, one per open compose modal.
type Service struct {
	mu        sync.RWMutex
	composers map[string]*Composer

	moderator Moderator
	publisher Publisher
	notifier  Notifier
	users     UserProvider
	previews  *PreviewRegistry

	clock Clock
	tick  time.Duration
	step  func() int
	now   func() time.Time
	newID func() string
}

func NewService(moderator Moderator, publisher Publisher, notifier Notifier, users UserProvider, tick time.Duration) *Service {
	if tick <= 0 {
		tick = defaultUploadTick
	}
	return &Service{
		composers: make(map[string]*Composer),
		moderator: moderator,
		publisher: publisher,
		notifier:  notifier,
		users:     users,
		previews:  NewPreviewRegistry(),
		clock:     realClock{},
		tick:      tick,
		step:      randomStep,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Open creates a composer and returns its id.
func (s *Service) Open() string {
	c := &Composer{
		svc:         s,
		id:          s.newID(),
		uploadState: UploadNotStarted,
	}
	s.mu.Lock()
	s.composers[c.id] = c
	s.mu.Unlock()
	return c.id
}

func (s *Service) get(id string) (*Composer, error) {
	s.mu.RLock()
	c, ok := s.composers[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *Service) State(id string) (StateResponse, error) {
	c, err := s.get(id)
	if err != nil {
		return StateResponse{}, err
	}
	return c.State(), nil
}

func (s *Service) UpdateBody(id, body string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}
	return c.UpdateBody(body)
}

func (s *Service) SelectMedia(id string, req SelectMediaRequest) (*MediaAttachment, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return c.SelectMedia(req)
}

func (s *Service) RemoveMedia(id string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}
	return c.RemoveMedia()
}

func (s *Service) Submit(ctx context.Context, id string) (*domain.Post, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	post, err := c.Submit(ctx)
	if err != nil {
		return nil, err
	}
	s.drop(id)
	return post, nil
}

// Close discards a draft and frees its resources.
func (s *Service) Close(id string) error {
	c, err := s.get(id)
	if err != nil {
		return err
	}
	c.Close()
	s.drop(id)
	return nil
}

func (s *Service) drop(id string) {
	s.mu.Lock()
	delete(s.composers, id)
	s.mu.Unlock()
}

// Previews exposes the registry so callers can observe handle leaks.
func (s *Service) Previews() *PreviewRegistry {
	return s.previews
}
