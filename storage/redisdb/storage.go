package redisdb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Perlera89/campus/core"
	"github.com/Perlera89/campus/storage"
)

const keyPrefix = "campus:partition:"

// Storage keeps partitions in redis, for kiosk-style deployments where several
// client processes share one session.
type Storage struct {
	rdb *redis.Client
}

var _ storage.Storage = (*Storage)(nil)

func Open(conf *core.Config) (*Storage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Storage.RedisAddr,
		Password: conf.Storage.RedisPassword,
		DB:       conf.Storage.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Storage{rdb: rdb}, nil
}

func (s *Storage) Get(ctx context.Context, partition string) ([]byte, error) {
	blob, err := s.rdb.Get(ctx, keyPrefix+partition).Bytes()
	if err == redis.Nil {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading partition %s", partition)
	}
	return blob, nil
}

func (s *Storage) Put(ctx context.Context, partition string, blob []byte) error {
	err := s.rdb.Set(ctx, keyPrefix+partition, blob, 0).Err()
	return errors.Wrapf(err, "writing partition %s", partition)
}

func (s *Storage) Delete(ctx context.Context, partition string) error {
	err := s.rdb.Del(ctx, keyPrefix+partition).Err()
	return errors.Wrapf(err, "deleting partition %s", partition)
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}
