package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type Storages struct {
	UserRepository  UserRepository
	RevocationStore RevocationStore
}

// NewStorages wires the persistence layer: the PostgreSQL user repository and
// a revocation store. When a Redis address is configured the revocation store
// is Redis-backed with a TTL of twice the access-token lifetime (so an entry
// always outlives any token it could refer to); otherwise an in-memory store
// is used.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, tokenDuration time.Duration, log *logger.Logger) (*Storages, error) {
	var revocations RevocationStore
	if cfg.Redis.Addr != "" {
		var err error
		revocations, err = NewRedisRevocationStore(ctx, cfg.Redis, 2*tokenDuration, log)
		if err != nil {
			return nil, err
		}
	} else {
		revocations = NewMemoryRevocationStore(log)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		RevocationStore: revocations,
	}, nil
}
