package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const maxBackoff = 30 * time.Second

type Options struct {
	Addr       string
	Password   string
	MaxRetries int
}

// Connect pings Redis until it answers, backing off exponentially between
// attempts. It gives up after MaxRetries attempts or when ctx is done.
func Connect(ctx context.Context, opts Options, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	attempts := opts.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := range attempts {
		if i > 0 {
			backoff := Backoff(i)
			logger.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				_ = client.Close()
				return nil, fmt.Errorf("redis connect cancelled: %w", ctx.Err())
			}
		}

		logger.Info().Int("attempt", i+1).Int("max_retries", attempts).Str("addr", opts.Addr).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", attempts, err)
}

// Backoff returns the wait before retry attempt n (1-based), capped at 30s.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	if attempt > 4 {
		return maxBackoff
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}
