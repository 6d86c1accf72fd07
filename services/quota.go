//go:generate go run go.uber.org/mock/mockgen -source=quota.go -destination=../mocks/mock_quota.go -package=mocks
package services

import (
	"log/slog"

	"pdfkita/domain"
	"pdfkita/repositories"
)

// GuestConversionLimit is how many conversions an anonymous session gets.
const GuestConversionLimit = 1

// IQuotaGate decides whether a session may start a conversion. It must be
// consulted before any remote call: a denial produces zero network side
// effects.
type IQuotaGate interface {
	TryConsume(session domain.Session) bool
}

type QuotaGate struct {
	sessions repositories.ISessionRepository
	log      *slog.Logger
}

func NewQuotaGate(sessions repositories.ISessionRepository, log *slog.Logger) IQuotaGate {
	return &QuotaGate{sessions: sessions, log: log}
}

// TryConsume always allows authenticated sessions without touching state.
// An anonymous session is allowed while the persisted counter is under the
// limit; allowing consumes one unit immediately. A denied call mutates
// nothing.
func (g *QuotaGate) TryConsume(session domain.Session) bool {
	if session.IsAuthenticated() {
		return true
	}

	if g.sessions.GuestCount() >= GuestConversionLimit {
		g.log.Debug("guest conversion quota exhausted")
		return false
	}

	if err := g.sessions.IncrementGuestCount(); err != nil {
		g.log.Error("failed to persist guest counter", "error", err)
	}
	return true
}
