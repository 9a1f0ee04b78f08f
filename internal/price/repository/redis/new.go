package redis

import (
	"time"

	"cryptobuzz-srv/internal/price/repository"
	pkgLog "cryptobuzz-srv/pkg/log"
	pkgRedis "cryptobuzz-srv/pkg/redis"
)

const (
	keyPrefix   = "price:snapshot:"
	snapshotTTL = 24 * time.Hour
)

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.SnapshotRepository = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) repository.SnapshotRepository {
	return &implRepository{l: l, redis: redis}
}

func key(symbol string) string {
	return keyPrefix + symbol
}
