package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/boggle/runner"
	"github.com/domino14/boggle/stats"
	"github.com/domino14/boggle/store"
)

func newStore(t *testing.T, opts ...store.Option) (*store.Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	s := store.NewFromClient(client, opts...)
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func result() *runner.Result {
	words := []string{"ATE", "EAT", "SEAT", "TEA"}
	return &runner.Result{
		Lexicon:   "tiny",
		Board:     []string{"SEA", "TAX", "EXX"},
		Words:     words,
		Summary:   stats.Summarize(words),
		ElapsedMs: 3,
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	_, err := s.Load(ctx, 42, []string{"SEA", "TAX", "EXX"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Save(ctx, 42, result()))
	assert.True(t, mr.Exists("boggle:result:000000000000002a:SEA/TAX/EXX"))

	res, err := s.Load(ctx, 42, []string{"SEA", "TAX", "EXX"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ATE", "EAT", "SEAT", "TEA"}, res.Words)
	assert.Equal(t, 4, res.Summary.Total)
	assert.Equal(t, []string{"SEAT"}, res.Summary.ByLength[4])

	// Another lexicon has its own results.
	_, err = s.Load(ctx, 43, []string{"SEA", "TAX", "EXX"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Delete(ctx, 42, []string{"SEA", "TAX", "EXX"}))
	_, err = s.Load(ctx, 42, []string{"SEA", "TAX", "EXX"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTimedOutNotSaved(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)
	res := result()
	res.TimedOut = true
	require.NoError(t, s.Save(ctx, 42, res))
	assert.Empty(t, mr.Keys())
}

func TestOptions(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t, store.WithPrefix("test:"), store.WithTTL(time.Minute))
	require.NoError(t, s.Save(ctx, 1, result()))

	key := "test:0000000000000001:SEA/TAX/EXX"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(2 * time.Minute)
	_, err := s.Load(ctx, 1, []string{"SEA", "TAX", "EXX"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnreachable(t *testing.T) {
	s, mr := newStore(t)
	require.NoError(t, s.Ping(context.Background()))
	mr.Close()
	_, err := s.Load(context.Background(), 1, []string{"A"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
