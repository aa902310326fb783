package session

import (
	"context"
	"time"

	"uiagate/internal/domain/service"
	"uiagate/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each UIA session as a hash (data bag) and a set
// (completed stages), so HSET and SADD give per-key atomicity across
// gate instances. Keys expire ttl after the last write when ttl > 0.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store writing keys under prefix.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "uia"
	}

	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Connect binds a handle to sessionID. Nothing is written until the first
// SetData or MarkCompleted.
func (s *RedisStore) Connect(_ context.Context, sessionID string) (service.Session, error) {
	return &redisSession{store: s, id: sessionID}, nil
}

func (s *RedisStore) dataKey(sessionID string) string {
	return s.prefix + ":session:" + sessionID + ":data"
}

func (s *RedisStore) completedKey(sessionID string) string {
	return s.prefix + ":session:" + sessionID + ":completed"
}

type redisSession struct {
	store *RedisStore
	id    string
}

func (r *redisSession) ID() string {
	return r.id
}

func (r *redisSession) GetData(ctx context.Context, key string) (string, bool, error) {
	value, err := r.store.client.HGet(ctx, r.store.dataKey(r.id), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis HGET session %s", r.id)
	}

	return value, true, nil
}

func (r *redisSession) SetData(ctx context.Context, key, value string) error {
	dataKey := r.store.dataKey(r.id)
	_, err := r.store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, dataKey, key, value)
		r.touch(ctx, pipe, dataKey)

		return nil
	})

	return errors.Wrapf(err, "redis HSET session %s", r.id)
}

func (r *redisSession) SetDataIfAbsent(ctx context.Context, key, value string) (bool, error) {
	dataKey := r.store.dataKey(r.id)

	var stored *redis.BoolCmd
	_, err := r.store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		stored = pipe.HSetNX(ctx, dataKey, key, value)
		r.touch(ctx, pipe, dataKey)

		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "redis HSETNX session %s", r.id)
	}

	return stored.Val(), nil
}

func (r *redisSession) DeleteData(ctx context.Context, key string) error {
	err := r.store.client.HDel(ctx, r.store.dataKey(r.id), key).Err()

	return errors.Wrapf(err, "redis HDEL session %s", r.id)
}

func (r *redisSession) CompletedStages(ctx context.Context) ([]string, error) {
	stages, err := r.store.client.SMembers(ctx, r.store.completedKey(r.id)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "redis SMEMBERS session %s", r.id)
	}

	return stages, nil
}

func (r *redisSession) MarkCompleted(ctx context.Context, stage string) error {
	completedKey := r.store.completedKey(r.id)
	_, err := r.store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, completedKey, stage)
		r.touch(ctx, pipe, completedKey)

		return nil
	})

	return errors.Wrapf(err, "redis SADD session %s", r.id)
}

func (r *redisSession) touch(ctx context.Context, pipe redis.Pipeliner, key string) {
	if r.store.ttl > 0 {
		pipe.Expire(ctx, key, r.store.ttl)
	}
}
