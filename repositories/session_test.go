package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pdfkita/domain"
)

func TestSessionRepository(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	store := NewStore(db, testLogger())
	sessions := NewSessionRepository(store)

	t.Run("fresh store is anonymous", func(t *testing.T) {
		req := require.New(t)
		session := sessions.Current()
		req.False(session.IsAuthenticated())
		req.Equal(domain.GuestNamespace, session.Namespace())
	})

	t.Run("save then current roundtrips", func(t *testing.T) {
		req := require.New(t)
		req.NoError(sessions.Save(domain.Session{Username: "alice", Token: "opaque-token"}))

		session := sessions.Current()
		req.True(session.IsAuthenticated())
		req.Equal("alice", session.Username)
		req.Equal("alice", session.Namespace())
	})

	t.Run("clear reverts to anonymous", func(t *testing.T) {
		req := require.New(t)
		req.NoError(sessions.Clear())
		req.False(sessions.Current().IsAuthenticated())
	})

	t.Run("guest counter starts at zero and increments", func(t *testing.T) {
		req := require.New(t)
		req.Equal(0, sessions.GuestCount())

		req.NoError(sessions.IncrementGuestCount())
		req.Equal(1, sessions.GuestCount())

		req.NoError(sessions.IncrementGuestCount())
		req.Equal(2, sessions.GuestCount())
	})

	t.Run("clear guest counter resets to zero", func(t *testing.T) {
		req := require.New(t)
		req.NoError(sessions.ClearGuestCount())
		req.Equal(0, sessions.GuestCount())
	})

	t.Run("unparsable counter counts as zero", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set(KeyGuestConvertCount, "not-a-number"))
		req.Equal(0, sessions.GuestCount())
	})
}
