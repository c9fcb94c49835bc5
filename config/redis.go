package config

import (
	"context"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil without error when no address is configured
func ConnectRedis(ctx context.Context, s *Settings, log logger.Logger) (*redis.Client, error) {
	if s.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, booking cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Username: s.RedisUser,
		Password: s.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	log.Info("connected to redis at %s", s.RedisAddr)
	return rdb, nil
}
