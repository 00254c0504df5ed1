package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/listing"
)

// ErrSessionNotFound is returned when a browse session is unknown or expired
var ErrSessionNotFound = errors.New("browse session not found")

const DefaultBrowseSessionTTL = 30 * time.Minute

// MaxMemorySessions caps the sessions held in process memory; the least recently used go first
const MaxMemorySessions = 256

type memorySession struct {
	payload   []byte
	expiresAt time.Time
}

// BrowseRepository stores browse sessions in Redis.
// Sessions are kept in process memory when Redis is not configured or not reachable.
type BrowseRepository struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *logrus.Logger

	memory *expirable.LRU[string, memorySession]
	now    func() time.Time
}

func NewBrowseRepository(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *BrowseRepository {
	if ttl <= 0 {
		ttl = DefaultBrowseSessionTTL
	}
	return &BrowseRepository{
		redis:  redisClient,
		ttl:    ttl,
		logger: logger,
		memory: expirable.NewLRU[string, memorySession](MaxMemorySessions, nil, ttl),
		now:    time.Now,
	}
}

func browseSessionKey(id string) string {
	return fmt.Sprintf("storefront:browse:%s", id)
}

// Save stores the session snapshot and refreshes its expiry
func (r *BrowseRepository) Save(ctx context.Context, id string, snapshot listing.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode browse session: %w", err)
	}

	if r.redis != nil {
		err := r.redis.Set(ctx, browseSessionKey(id), payload, r.ttl).Err()
		if err == nil {
			r.forget(id)
			return nil
		}
		r.logger.WithError(err).WithField("session_id", id).Warn("Redis unavailable, keeping browse session in memory")
	}

	r.memory.Add(id, memorySession{payload: payload, expiresAt: r.now().Add(r.ttl)})
	return nil
}

// Load returns the stored session snapshot
func (r *BrowseRepository) Load(ctx context.Context, id string) (listing.Snapshot, error) {
	var snapshot listing.Snapshot

	if r.redis != nil {
		payload, err := r.redis.Get(ctx, browseSessionKey(id)).Bytes()
		switch {
		case err == nil:
			if err := json.Unmarshal(payload, &snapshot); err != nil {
				return snapshot, fmt.Errorf("failed to decode browse session: %w", err)
			}
			return snapshot, nil
		case !errors.Is(err, redis.Nil):
			r.logger.WithError(err).WithField("session_id", id).Warn("Redis unavailable, reading browse session from memory")
		}
	}

	payload, ok := r.fromMemory(id)
	if !ok {
		return snapshot, ErrSessionNotFound
	}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to decode browse session: %w", err)
	}
	return snapshot, nil
}

func (r *BrowseRepository) fromMemory(id string) ([]byte, bool) {
	session, ok := r.memory.Get(id)
	if !ok {
		return nil, false
	}
	if r.now().After(session.expiresAt) {
		r.memory.Remove(id)
		return nil, false
	}
	return session.payload, true
}

func (r *BrowseRepository) forget(id string) {
	r.memory.Remove(id)
}

// memorySessions reports how many sessions are held in process memory
func (r *BrowseRepository) memorySessions() int {
	return r.memory.Len()
}
