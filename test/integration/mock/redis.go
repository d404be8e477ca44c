package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce sync.Once
	redisConn *redis.Client
)

// NewRedis starts a miniredis server once and returns a client for it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis removes every key, resetting rate limit counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

// PingRedis reports whether the server answers.
func PingRedis(client *redis.Client) bool {
	return client.Ping(context.Background()).Err() == nil
}
