// Package store keeps solved boards in Redis, keyed by lexicon checksum and
// board letters, so a long-running solver never searches the same board
// twice.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/runner"
)

var ErrNotFound = errors.New("result not found")

// Store saves and loads solve results.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for results.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for results.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a store talking to the Redis server at address.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "boggle:result:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(checksum uint64, rows []string) string {
	return fmt.Sprintf("%s%016x:%s", s.prefix, checksum, strings.Join(rows, "/"))
}

// Save persists res under the lexicon checksum it was solved with. Results
// of searches that timed out are incomplete and are not saved.
func (s *Store) Save(ctx context.Context, checksum uint64, res *runner.Result) error {
	if res.TimedOut {
		return nil
	}
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := s.client.Set(ctx, s.key(checksum, res.Board), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the result for the board with the given rows.
func (s *Store) Load(ctx context.Context, checksum uint64, rows []string) (*runner.Result, error) {
	val, err := s.client.Get(ctx, s.key(checksum, rows)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	var res runner.Result
	if err := yaml.Unmarshal([]byte(val), &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &res, nil
}

// Delete removes the result for the board with the given rows.
func (s *Store) Delete(ctx context.Context, checksum uint64, rows []string) error {
	return s.client.Del(ctx, s.key(checksum, rows)).Err()
}

// Ping checks that the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
