package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config describes the optional shared login throttle store. Addr is either host:port or a
// redis:// / rediss:// URL; a URL carries its own password and database.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Connect builds a client from cfg and pings it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

func clientOptions(cfg Config) (*redis.Options, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var opts *redis.Options
	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	opts.DialTimeout = timeout
	opts.ReadTimeout = timeout
	opts.WriteTimeout = timeout
	return opts, nil
}
