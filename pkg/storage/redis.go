package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type redisAdapter struct {
	client *redis.Client
}

func NewRedis() (Adapter, error) {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
		return nil, err
	}

	logrus.Info("Successfully connected to Redis")
	return &redisAdapter{client: client}, nil
}

// NewRedisWithClient exists for tests that run against miniredis.
func NewRedisWithClient(client *redis.Client) Adapter {
	return &redisAdapter{client: client}
}

func (r *redisAdapter) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading key %s: %v", key, err))
		return "", err
	}
	return value, nil
}

func (r *redisAdapter) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error writing key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisAdapter) Delete(ctx context.Context, key string) error {
	if _, err := r.client.Del(ctx, key).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisAdapter) Close() error {
	return r.client.Close()
}
