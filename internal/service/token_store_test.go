package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestTokenStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTokenStore(client, newTestLogger()), mr
}

func TestTokenStore_StoreAndValidate(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "user", 7, "acc-1", time.Minute, "ref-1", time.Hour))

	valid, err := store.IsAccessValid(ctx, "user", 7, "acc-1")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = store.IsAccessValid(ctx, "admin", 7, "acc-1")
	require.NoError(t, err)
	assert.False(t, valid, "roles must not share tokens")

	mr.FastForward(2 * time.Minute)
	valid, err = store.IsAccessValid(ctx, "user", 7, "acc-1")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestTokenStore_ConsumeRefreshOnce(t *testing.T) {
	store, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "user", 7, "acc-1", time.Minute, "ref-1", time.Hour))

	ok, err := store.ConsumeRefresh(ctx, "user", 7, "ref-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ConsumeRefresh(ctx, "user", 7, "ref-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStore_RevokeAll(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "user", 7, "acc-1", time.Minute, "ref-1", time.Hour))
	require.NoError(t, store.Store(ctx, "user", 7, "acc-2", time.Minute, "ref-2", time.Hour))
	require.NoError(t, store.Store(ctx, "user", 8, "acc-3", time.Minute, "ref-3", time.Hour))

	require.NoError(t, store.RevokeAll(ctx, "user", 7))

	assert.False(t, mr.Exists("access_token:user:7:acc-1"))
	assert.False(t, mr.Exists("refresh_token:user:7:ref-2"))
	assert.True(t, mr.Exists("access_token:user:8:acc-3"))
}

func TestTokenStore_Revoke(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "admin", 1, "acc-1", time.Minute, "ref-1", time.Hour))
	require.NoError(t, store.Revoke(ctx, "admin", 1, "acc-1", ""))

	assert.False(t, mr.Exists("access_token:admin:1:acc-1"))
	assert.True(t, mr.Exists("refresh_token:admin:1:ref-1"))
	assert.NoError(t, store.Revoke(ctx, "admin", 1, "", ""))
}
