package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lifeline/internal/domain"
	"lifeline/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const keyPrefix = "lifeline:session:"

var ErrNotFound = errors.New("session not found")

// Store persists sessions server-side; the cookie only carries the ID.
type Store interface {
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session) error
	Destroy(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// RedisStore keeps one JSON value per session with a sliding TTL.
type RedisStore struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
}

func NewRedisStore(client *redis.Client, breaker *gobreaker.CircuitBreaker, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:  client,
		breaker: breaker,
		ttl:     ttl,
	}
}

func key(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	k := key(id)
	logger.SessionStoreCall("GET", k)

	raw, err := s.breaker.Execute(func() (interface{}, error) {
		val, err := s.client.Get(ctx, k).Bytes()
		if err != nil {
			return nil, err
		}
		if err := s.client.Expire(ctx, k, s.ttl).Err(); err != nil {
			return nil, err
		}
		return val, nil
	})
	if errors.Is(err, redis.Nil) {
		logger.SessionStoreResult("GET", nil, "hit", false)
		return nil, ErrNotFound
	}
	if err != nil {
		logger.SessionStoreResult("GET", err)
		return nil, storageError(err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw.([]byte), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	sess.ID = id
	logger.SessionStoreResult("GET", nil, "hit", true)
	return &sess, nil
}

// Save writes sess and refreshes its TTL, assigning a new ID when it has none.
func (s *RedisStore) Save(ctx context.Context, sess *domain.Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	k := key(sess.ID)
	logger.SessionStoreCall("SET", k)

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, k, payload, s.ttl).Err()
	})
	logger.SessionStoreResult("SET", err)
	if err != nil {
		return storageError(err)
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	k := key(id)
	logger.SessionStoreCall("DEL", k)

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, k).Err()
	})
	logger.SessionStoreResult("DEL", err)
	if err != nil {
		return storageError(err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func storageError(err error) error {
	return fmt.Errorf("%w: session store: %w", domain.ErrStorageFailure, err)
}
