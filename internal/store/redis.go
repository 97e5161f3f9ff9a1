package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
)

const casePrefix = "case:"

// RedisStore serves cases from Redis. Each case lives under a case:<name>
// key as JSON; nothing about a running session is ever written here, Seed is
// the only write path and is an operator action.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements CaseStore interface
var _ CaseStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed case store from a redis:// URL.
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisStore{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	s.logger.Info("Redis connection closed")
	return nil
}

func (s *RedisStore) ListCases(ctx context.Context) (map[string]string, error) {
	cases := make(map[string]string)

	iter := s.client.Scan(ctx, 0, casePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		name := key[len(casePrefix):]

		c, err := s.GetCase(ctx, name)
		if err != nil {
			s.logger.Warn("Skipping unreadable case", "key", key, "error", err)
			continue
		}
		cases[name] = c.Title
	}
	if err := iter.Err(); err != nil {
		s.logger.Error("Failed to scan case keys", "error", err)
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return cases, nil
}

func (s *RedisStore) GetCase(ctx context.Context, name string) (*casefile.Case, error) {
	data, err := s.client.Get(ctx, casePrefix+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, name)
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	c, err := casefile.Parse([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", name, err)
	}
	return c, nil
}

// Seed writes a case under case:<name>. Used by the seeding CLI to publish
// the case catalog; the case is validated before it is written.
func (s *RedisStore) Seed(ctx context.Context, name string, c *casefile.Case) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to seed invalid case %s: %w", name, err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal case %s: %w", name, err)
	}

	if err := s.client.Set(ctx, casePrefix+name, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to seed case %s: %w", name, err)
	}

	s.logger.Info("Case seeded", "name", name, "title", c.Title)
	return nil
}
