package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a connected client, or nil when Redis is not
// configured or not reachable. Callers treat nil as "run without cache".
func ConnectRedis(ctx context.Context, cfg *Config, logger *slog.Logger) *redis.Client {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WarnContext(ctx, "failed to parse Redis URL, running without cache", "error", err)
			return nil
		}
		opt = parsedOpt
	case cfg.RedisAddr != "":
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	default:
		logger.InfoContext(ctx, "redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.WarnContext(ctx, "failed to connect to Redis, running without cache", "error", err)
		_ = client.Close()
		return nil
	}

	logger.InfoContext(ctx, "redis connected", "addr", opt.Addr)
	return client
}

func CloseRedis(client *redis.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Warn("closing redis failed", "error", err)
	}
}
