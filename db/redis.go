// file: db/redis.go

package db

import (
	"context"
	"fmt"

	"bytebank-api/config"
	"bytebank-api/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis opens the client backing the account list cache.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	cfg := config.AppConfig.Redis
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.WithError(err).WithField("address", addr).Error("Redis is unreachable, cache not started")
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"address": addr,
		"db":      cfg.DB,
		"ttl":     cfg.TTL.String(),
	}).Info("Account cache connected")
	return rdb, nil
}
