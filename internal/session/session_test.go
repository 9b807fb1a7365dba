package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value, "missing file reads as empty store")

	require.NoError(t, store.Set(ctx, "token", "abc"))
	require.NoError(t, store.Set(ctx, "theme", "dark"))

	reopened := NewFileStore(path)
	value, err = reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, reopened.Delete(ctx, "token"))
	value, err = reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = reopened.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestFileStore_CorruptFilePropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Get(context.Background(), "token")
	assert.ErrorIs(t, err, ErrStorage)
}

type memoryStore struct {
	values map[string]string
	err    error
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func TestSession_Token(t *testing.T) {
	ctx := context.Background()

	t.Run("primary key", func(t *testing.T) {
		s := New(&memoryStore{values: map[string]string{"token": "t1", "authToken": "legacy"}}, "token", "authToken", logger.NewNop())
		token, err := s.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "t1", token)
	})

	t.Run("legacy fallback", func(t *testing.T) {
		s := New(&memoryStore{values: map[string]string{"authToken": "legacy"}}, "token", "authToken", logger.NewNop())
		token, err := s.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "legacy", token)
	})

	t.Run("no token is not an error", func(t *testing.T) {
		s := New(&memoryStore{values: map[string]string{}}, "token", "authToken", logger.NewNop())
		token, err := s.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		boom := errors.New("disk gone")
		s := New(&memoryStore{err: boom}, "token", "authToken", logger.NewNop())
		_, err := s.Token(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSession_LoginLogout(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{values: map[string]string{"authToken": "old"}}
	s := New(store, "token", "authToken", logger.NewNop())

	assert.ErrorIs(t, s.Login(ctx, "   "), ErrEmptyToken)

	require.NoError(t, s.Login(ctx, "Bearer  xyz "))
	assert.Equal(t, "xyz", store.values["token"])

	ok, err := s.Authenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Logout(ctx))
	assert.Empty(t, store.values)
}

type fakeRedis struct {
	values map[string]string
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{values: map[string]string{}}
	store := NewRedisStore(client, "console:")

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value, "redis.Nil maps to empty value")

	require.NoError(t, store.Set(ctx, "token", "abc"))
	assert.Equal(t, "abc", client.values["console:token"])

	value, err = store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, store.Delete(ctx, "token"))
	assert.Empty(t, client.values)
}
