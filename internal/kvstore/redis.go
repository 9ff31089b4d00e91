package kvstore

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig holds connection values for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Redis adapts a redis database to the Store contract. The contract has no
// error surface, so connection problems are logged and reads degrade to
// absent, writes to no-ops.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis connects to redis using the provided configuration.
func NewRedis(cfg RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx(), key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (r *Redis) Set(key, value string) {
	if err := r.client.Set(r.ctx(), key, value, 0).Err(); err != nil {
		r.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Remove(key string) {
	if err := r.client.Del(r.ctx(), key).Err(); err != nil {
		r.logger.Warn("redis del failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the underlying client.
func (r *Redis) Close() {
	_ = r.client.Close()
}

// Ping verifies connectivity, used by the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) ctx() context.Context {
	return context.Background()
}
