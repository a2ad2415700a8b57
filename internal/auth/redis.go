package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKey = "session:%s" // session:sessionID

// RedisStore keeps sessions as JSON values that expire with the session.
type RedisStore struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, now: time.Now}
}

type redisSession struct {
	UserID    int64 `json:"user_id"`
	ExpiresAt int64 `json:"expires_at"`
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return ErrExpired
	}
	data, err := json.Marshal(redisSession{UserID: s.UserID, ExpiresAt: s.ExpiresAt.Unix()})
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, fmt.Sprintf(sessionKey, s.ID), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	raw, err := r.redis.Get(ctx, fmt.Sprintf(sessionKey, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrNotFound
	} else if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	var rs redisSession
	if err := json.Unmarshal(raw, &rs); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return Session{ID: id, UserID: rs.UserID, ExpiresAt: time.Unix(rs.ExpiresAt, 0)}, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.redis.Del(ctx, fmt.Sprintf(sessionKey, id)).Err()
}
