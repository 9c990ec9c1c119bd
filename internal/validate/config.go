package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Env validates required configuration at startup. Fail-fast on bad config.
func Env() error {
	if os.Getenv("DATABASE_URL") == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if err := envInt("PORT", 1, 65535); err != nil {
		return fmt.Errorf("PORT: %w", err)
	}
	// Display offset is whole hours; the catalog renders in a fixed civil zone.
	if err := envInt("DISPLAY_UTC_OFFSET", -12, 14); err != nil {
		return fmt.Errorf("DISPLAY_UTC_OFFSET: %w", err)
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if appEnv == "production" {
		if os.Getenv("UPSTASH_REDIS_URL") == "" && os.Getenv("REDIS_ADDR") == "" {
			warns = append(warns, "no Redis configured; rate limiting falls back to per-process limits")
		}
		if u := os.Getenv("UPSTASH_REDIS_URL"); u != "" && len(u) > 8 && u[:8] == "redis://" {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
	}

	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}

func envInt(key string, min, max int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil // unset -> code defaults apply elsewhere
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("not a number: %v", err)
	}
	if n < min || n > max {
		return fmt.Errorf("must be between %d and %d", min, max)
	}
	return nil
}
