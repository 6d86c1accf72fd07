package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pdfkita/domain"
)

func TestQuotaGate(t *testing.T) {
	t.Run("fresh anonymous session gets one conversion", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		gate := NewQuotaGate(deps.sessions, deps.log)

		req.True(gate.TryConsume(domain.Session{}))
		req.Equal(1, deps.sessions.GuestCount())
	})

	t.Run("second consume is denied without mutation", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		gate := NewQuotaGate(deps.sessions, deps.log)

		req.True(gate.TryConsume(domain.Session{}))
		req.False(gate.TryConsume(domain.Session{}))
		req.Equal(1, deps.sessions.GuestCount())

		// Still denied, still unchanged.
		req.False(gate.TryConsume(domain.Session{}))
		req.Equal(1, deps.sessions.GuestCount())
	})

	t.Run("authenticated sessions always pass without state change", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		gate := NewQuotaGate(deps.sessions, deps.log)

		authenticated := domain.Session{Username: "alice", Token: "opaque"}
		for range 5 {
			req.True(gate.TryConsume(authenticated))
		}
		req.Equal(0, deps.sessions.GuestCount())
	})

	t.Run("login resets the counter and lifts the limit", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		gate := NewQuotaGate(deps.sessions, deps.log)
		sessionService := NewSessionService(deps.sessions)

		req.True(gate.TryConsume(domain.Session{}))
		req.False(gate.TryConsume(domain.Session{}))

		session, err := sessionService.Login("alice", "opaque")
		req.NoError(err)

		req.True(gate.TryConsume(session))
		req.Equal(0, deps.sessions.GuestCount())
	})
}
