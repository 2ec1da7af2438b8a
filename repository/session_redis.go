package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mortgage-agent/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepositoryRedis stores each session as a JSON blob with a TTL, so
// abandoned conversations expire on their own.
type SessionRepositoryRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepositoryRedis(addr string, ttl time.Duration) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *SessionRepositoryRedis) Get(
	ctx context.Context,
	id string,
) (*domain.Session, bool, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, true, nil
}

func (r *SessionRepositoryRedis) Save(
	ctx context.Context,
	session *domain.Session,
) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
