// Package redis implements storage.SaveStore over a Redis server. Each slot
// is one string key holding the encoded game file.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/config"
	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

// Store saves worlds as Redis strings under prefix+slot.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

var _ storage.SaveStore = (*Store)(nil)

// NewStore dials the server named by cfg and pings it.
//
// Precondition: cfg must have passed config validation; logger must be non-nil.
// Postcondition: Returns a connected Store or the ping error.
func NewStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return NewStoreWithClient(client, cfg.KeyPrefix, cfg.TTL, logger), nil
}

// NewStoreWithClient wraps an existing client. A zero ttl keeps saves forever.
func NewStoreWithClient(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

// Key returns the Redis key for slot.
func (s *Store) Key(slot string) string {
	return s.prefix + slot
}

// Save writes def under slot, resetting its expiry.
func (s *Store) Save(ctx context.Context, slot string, def *world.Definition) error {
	if err := storage.ValidateSlot(slot); err != nil {
		return err
	}
	data, err := storage.EncodeBytes(def)
	if err != nil {
		return fmt.Errorf("encoding slot %q: %w", slot, err)
	}
	if err := s.client.Set(ctx, s.Key(slot), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	s.logger.Info("game saved",
		zap.String("backend", "redis"),
		zap.String("slot", slot),
		zap.Duration("ttl", s.ttl),
	)
	return nil
}

// Load reads the world saved under slot.
//
// Postcondition: A missing or expired key yields storage.ErrSlotNotFound.
func (s *Store) Load(ctx context.Context, slot string) (*world.Definition, error) {
	if err := storage.ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.Key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("slot %q: %w", slot, storage.ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %q: %w", slot, err)
	}
	def, err := storage.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding slot %q: %w", slot, err)
	}
	return def, nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}
