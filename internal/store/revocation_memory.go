package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// memoryRevocationStore is an in-process [RevocationStore] backed by a
// mutex-guarded set. Revocations live until process restart; it is the
// fallback when no Redis address is configured.
type memoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
	logger  *logger.Logger
}

// NewMemoryRevocationStore constructs an empty in-memory revocation store.
func NewMemoryRevocationStore(log *logger.Logger) RevocationStore {
	log.Debug().Msg("creating in-memory revocation store")
	return &memoryRevocationStore{
		revoked: make(map[string]struct{}),
		logger:  log,
	}
}

func (s *memoryRevocationStore) MarkRevoked(ctx context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[jti] = struct{}{}
	return nil
}

func (s *memoryRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.revoked[jti]
	return ok, nil
}
