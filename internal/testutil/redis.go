package testutil

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

// RedisServer is an in-process Redis with a client already connected.
type RedisServer struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedisServer starts a miniredis instance for the duration of the test.
//
// Postcondition: Server and Client are closed by t.Cleanup.
func NewRedisServer(t *testing.T) *RedisServer {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &RedisServer{Server: mr, Client: client}
}
