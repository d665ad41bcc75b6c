package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

// Store persists per-session filter snapshots in Redis. Snapshots are written
// as JSON and decoded tolerantly: a stale or partially alien snapshot from an
// older client version never breaks a session, it just falls back to defaults
// field by field.
type Store struct {
	redis  *utils.RedisClient
	ttl    time.Duration
	logger logging.Logger
}

// NewStore creates a session store with the configured snapshot TTL
func NewStore(redis *utils.RedisClient, cfg *config.Config) *Store {
	return &Store{
		redis:  redis,
		ttl:    cfg.Sessions.TTL,
		logger: logging.GetGlobalLogger(),
	}
}

func filterKey(sessionID string) string {
	return fmt.Sprintf("session:%s:filters", sessionID)
}

// LoadFilters returns the saved filter state for a session. Missing or
// undecodable snapshots yield the default state, never an error.
func (s *Store) LoadFilters(ctx context.Context, sessionID string) models.FilterState {
	data, err := s.redis.GetRaw(ctx, filterKey(sessionID))
	if err != nil {
		if !errors.Is(err, utils.ErrCacheMiss) {
			s.logger.Warn("Failed to load filter snapshot", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return models.DecodeFilterSnapshot(nil)
	}
	return models.DecodeFilterSnapshot(data)
}

// SaveFilters stores the filter state for a session, refreshing its TTL
func (s *Store) SaveFilters(ctx context.Context, sessionID string, filters models.FilterState) error {
	if err := s.redis.SetJSON(ctx, filterKey(sessionID), filters, s.ttl); err != nil {
		return fmt.Errorf("failed to save filter snapshot: %w", err)
	}
	return nil
}
