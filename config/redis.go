package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/NomadCrew/openweather-go/logger"
	"github.com/redis/go-redis/v9"
)

// RedisOptions builds client options for the usage store. TLS is enabled when
// requested or when the address points at a managed Upstash instance.
func RedisOptions(cfg *RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:            cfg.Address,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        4,
		MinIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		MaxRetries:      2,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
		// The usage counter sits on the request path.
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}

	if cfg.UseTLS || strings.Contains(cfg.Address, "upstash.io") {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	logger.GetLogger().Infow("Configuring Redis connection",
		"address", cfg.Address,
		"db", cfg.DB,
		"use_tls", opts.TLSConfig != nil)

	return opts
}

// PingRedis pings client up to attempts times, waiting delay between tries.
func PingRedis(ctx context.Context, client redis.Cmdable, attempts int, delay time.Duration) error {
	log := logger.GetLogger()
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			if i > 0 {
				log.Infow("Connected to Redis after retries", "attempt", i+1)
			}
			return nil
		}
		if i == attempts-1 {
			break
		}

		log.Warnw("Failed to ping Redis, retrying", "error", err, "attempt", i+1, "max_attempts", attempts)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("failed to ping Redis after %d attempts: %w", attempts, err)
}
