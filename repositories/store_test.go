package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary in-memory Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelError)
}

func TestStore(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	store := NewStore(db, testLogger())

	t.Run("missing key reports absence, not an error", func(t *testing.T) {
		req := require.New(t)
		value, ok := store.Get("never-written")
		req.False(ok)
		req.Empty(value)
	})

	t.Run("set then get roundtrips", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set("userName", "alice"))

		value, ok := store.Get("userName")
		req.True(ok)
		req.Equal("alice", value)
	})

	t.Run("remove makes the key absent again", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set("userToken", "opaque"))
		req.NoError(store.Remove("userToken"))

		_, ok := store.Get("userToken")
		req.False(ok)
	})

	t.Run("removing an absent key is not an error", func(t *testing.T) {
		require.New(t).NoError(store.Remove("ghost"))
	})
}
