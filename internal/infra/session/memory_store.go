package session

import (
	"context"
	"sync"
	"time"

	"rxconsole/internal/domain/repository"
)

// memoryStore keeps the token in process memory.
type memoryStore struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryStore creates an in-process token store.
func NewMemoryStore() repository.TokenRepository {
	return &memoryStore{now: time.Now}
}

func (s *memoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", repository.ErrTokenNotFound
	}
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		return "", repository.ErrTokenNotFound
	}

	return s.token, nil
}

func (s *memoryStore) Set(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = time.Time{}
	if ttl > 0 {
		s.expiresAt = s.now().Add(ttl)
	}

	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiresAt = time.Time{}

	return nil
}
