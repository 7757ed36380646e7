package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/go-redis/redis/v8"
)

// revokedKeyPrefix namespaces revocation entries so the store can share a
// Redis database with other consumers.
const revokedKeyPrefix = "revoked:"

// redisRevocationStore is a Redis-backed [RevocationStore]. Entries carry a
// TTL longer than the access-token lifetime, so Redis garbage-collects
// revocations that no live token could present anymore.
type redisRevocationStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisRevocationStore connects to Redis using the provided configuration
// and returns a revocation store whose entries expire after ttl.
//
// The connection is verified with a PING before the store is returned.
func NewRedisRevocationStore(ctx context.Context, cfg config.Redis, ttl time.Duration, log *logger.Logger) (RevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisRevocationStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisRevocationStore").Str("addr", cfg.Addr).Msg("connected to redis successfully")

	return &redisRevocationStore{
		client: client,
		ttl:    ttl,
		logger: log,
	}, nil
}

func (s *redisRevocationStore) MarkRevoked(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	if err := s.client.Set(ctx, revokedKeyPrefix+jti, "1", s.ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisRevocationStore.MarkRevoked").Msg("error: setting revocation key")
		return fmt.Errorf("failed to mark token revoked: %w", err)
	}

	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContext(ctx)

	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisRevocationStore.IsRevoked").Msg("error: checking revocation key")
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return n > 0, nil
}
