package redis

import (
	"fmt"

	"cryptobuzz-srv/config"
	pkgRedis "cryptobuzz-srv/pkg/redis"
)

// Connect returns nil, nil when Redis is not configured.
func Connect(cfg *config.Config) (pkgRedis.IRedis, error) {
	if !cfg.RedisEnabled() {
		return nil, nil
	}

	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		UseTLS:       cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func Disconnect(client pkgRedis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
