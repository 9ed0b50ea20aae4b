// Package session keeps logged-in administrators' sessions in Redis. A
// session id is 32 random bytes (base64url) mapping to a user id, with a TTL
// that is refreshed on every resolve.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "session:"
	idByteSize = 32
)

// RedisOptions configures the connection to Redis.
type RedisOptions struct {
	Addr        string
	Username    string
	Password    string
	DB          int
	DialTimeout time.Duration
	Timeout     time.Duration
	MaxRetries  int
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, options RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Username:     options.Username,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  options.DialTimeout,
		ReadTimeout:  options.Timeout,
		WriteTimeout: options.Timeout,
		MaxRetries:   options.MaxRetries,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// Store persists sessions. It is safe for concurrent use.
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewStore returns a Store keeping each session in client for ttl after it
// was established.
func NewStore(client redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Establish creates a new session for userID and returns its id.
func (s *Store) Establish(ctx context.Context, userID domain.UserID) (string, error) {
	b := make([]byte, idByteSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate session id: %w", err)
	}
	id := base64.RawURLEncoding.EncodeToString(b)

	if err := s.client.Set(ctx, key(id), userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("could not store session: %w", err)
	}

	return id, nil
}

// Resolve returns the user id bound to the session, or nil when the session
// does not exist, expired or holds an unreadable value.
func (s *Store) Resolve(ctx context.Context, id string) (*domain.UserID, error) {
	if id == "" {
		return nil, nil
	}

	val, err := s.client.GetEx(ctx, key(id), s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read session: %w", err)
	}

	parsed, err := uuid.Parse(val)
	if err != nil {
		logger.Warn(ctx, "ignoring session with malformed user id", zap.Error(err))

		return nil, nil
	}
	userID := domain.UserID(parsed)

	return &userID, nil
}

// Revoke deletes the session. Revoking an unknown session is not an error.
func (s *Store) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}
