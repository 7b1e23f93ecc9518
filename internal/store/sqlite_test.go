package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *SqliteStore {
	s, err := NewSqliteStore(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func Test_SqliteStore_AbsentKeyReturnsNil(t *testing.T) {

	s := newTestStore(t)

	value, err := s.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func Test_SqliteStore_SetThenGetRoundTrips(t *testing.T) {

	assert := assert.New(t)
	s := newTestStore(t)
	ctx := context.Background()

	assert.NoError(s.Set(ctx, KeyUserToken, []byte("token-value")))

	value, err := s.Get(ctx, KeyUserToken)
	assert.NoError(err)
	assert.Equal([]byte("token-value"), value)
}

func Test_SqliteStore_SetOverwritesExistingValue(t *testing.T) {

	assert := assert.New(t)
	s := newTestStore(t)
	ctx := context.Background()

	assert.NoError(s.Set(ctx, KeyAppSettings, []byte("first")))
	assert.NoError(s.Set(ctx, KeyAppSettings, []byte("second")))

	value, err := s.Get(ctx, KeyAppSettings)
	assert.NoError(err)
	assert.Equal([]byte("second"), value)
}

func Test_SqliteStore_RemoveDeletesSeveralKeys(t *testing.T) {

	assert := assert.New(t)
	s := newTestStore(t)
	ctx := context.Background()

	assert.NoError(s.Set(ctx, KeyUserToken, []byte("a")))
	assert.NoError(s.Set(ctx, KeyUserData, []byte("b")))
	assert.NoError(s.Set(ctx, KeySavedJobs, []byte("c")))

	assert.NoError(s.Remove(ctx, KeyUserToken, KeyUserData))

	for _, key := range []string{KeyUserToken, KeyUserData} {
		value, err := s.Get(ctx, key)
		assert.NoError(err)
		assert.Nil(value)
	}

	kept, err := s.Get(ctx, KeySavedJobs)
	assert.NoError(err)
	assert.Equal([]byte("c"), kept)
}

func Test_SqliteStore_RemoveAbsentKeyIsNoOp(t *testing.T) {

	s := newTestStore(t)

	assert.NoError(t, s.Remove(context.Background(), "never-written"))
	assert.NoError(t, s.Remove(context.Background()))
}
