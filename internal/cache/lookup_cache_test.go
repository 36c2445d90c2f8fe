package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *LookupCache {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewLookupCache(NewMemoryStore(), logger)
}

func TestRememberLoadsOnceAndCaches(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	calls := 0
	loader := func() ([]string, error) {
		calls++
		return []string{"SAR", "USD"}, nil
	}

	first, err := Remember(c, ctx, "currencies", loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"SAR", "USD"}, first)
	assert.Equal(t, 1, calls)

	second, err := Remember(c, ctx, "currencies", loader)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read must come from the cache")
}

func TestRememberPropagatesLoaderError(t *testing.T) {
	c := newTestCache()

	wantErr := errors.New("db down")
	_, err := Remember(c, context.Background(), "countries", func() ([]string, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestClearCacheInvalidatesEveryEntry(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	calls := 0
	loader := func() (string, error) {
		calls++
		return "payload", nil
	}

	_, err := Remember(c, ctx, "countries", loader)
	require.NoError(t, err)
	require.NoError(t, c.ClearCache(ctx))

	_, err = Remember(c, ctx, "countries", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "clear must force a reload")
}

func TestClearCacheChangesNamespaceOnFirstCall(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	before, err := c.namespacedKey(ctx, "countries")
	require.NoError(t, err)

	require.NoError(t, c.ClearCache(ctx))

	after, err := c.namespacedKey(ctx, "countries")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestRememberDegradesWhenStoreFails(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c := NewLookupCache(failingStore{}, logger)

	value, err := Remember(c, context.Background(), "countries", func() (string, error) {
		return "from-db", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "from-db", value)
}

func TestIndexVersionDefaultsToOne(t *testing.T) {
	c := newTestCache()
	assert.Equal(t, int64(1), c.IndexVersion(context.Background(), "psp"))
}

func TestBumpIndexVersionIsObservable(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	initial := c.IndexVersion(ctx, "psp")
	bumped := c.BumpIndexVersion(ctx, "psp")
	assert.Greater(t, bumped, initial, "first bump must change the visible version")
	assert.Equal(t, bumped, c.IndexVersion(ctx, "psp"))

	again := c.BumpIndexVersion(ctx, "psp")
	assert.Equal(t, bumped+1, again)
}

func TestIndexVersionsAreIndependentPerEntity(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	c.BumpIndexVersion(ctx, "psp")
	assert.Equal(t, int64(1), c.IndexVersion(ctx, "product"))
}

func TestMemoryStoreIncrIsVisibleToGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	n, err := store.Incr(ctx, "lookup:version")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	value, err := store.Get(ctx, "lookup:version")
	require.NoError(t, err, "an incremented key must read back like a string key")
	assert.Equal(t, "1", value)

	n, err = store.Incr(ctx, "lookup:version")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStoreIncrCountsFromSetValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "counter", "41", 0))
	n, err := store.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	require.NoError(t, store.Set(ctx, "text", "abc", 0))
	_, err = store.Incr(ctx, "text")
	assert.Error(t, err, "non-numeric values must not be incremented")
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

// failingStore errors on every operation, standing in for an unreachable
// Redis.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string) (string, error)              { return "", errStoreDown }
func (failingStore) Set(context.Context, string, string, time.Duration) error { return errStoreDown }
func (failingStore) Del(context.Context, ...string) error                     { return errStoreDown }
func (failingStore) Incr(context.Context, string) (int64, error)              { return 0, errStoreDown }
func (failingStore) Ping(context.Context) error                               { return errStoreDown }
