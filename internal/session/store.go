package session

import (
	"context"
	"sync"
	"time"
)

// Store guarda la marca "reserva ya confirmada" de cada sesión
// interactiva. Reemplaza el estado global de sesión de la versión
// anterior por un contexto explícito por request.
type Store interface {
	Confirmed(ctx context.Context, sessionID string) (bool, error)
	MarkConfirmed(ctx context.Context, sessionID string, ttl time.Duration) error
}

// ===============================
// Memoria (dev / tests)
// ===============================

type MemoryStore struct {
	mu        sync.Mutex
	confirmed map[string]time.Time // sessionID -> expiración
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		confirmed: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Confirmed(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.confirmed[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.confirmed, sessionID)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) MarkConfirmed(ctx context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.confirmed[sessionID] = time.Now().Add(ttl)
	return nil
}

var _ Store = (*MemoryStore)(nil)
