//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"pdfkita/domain"
	"pdfkita/errors"
	"pdfkita/repositories"
)

var validate = validator.New()

// LoginRequest carries the already-issued credentials to persist. Token
// issuance happens elsewhere; the token is opaque here.
type LoginRequest struct {
	Username string `validate:"required,min=1,max=64"`
	Token    string `validate:"required"`
}

// ISessionService tracks who is using the process. Pure local state, no
// network calls.
type ISessionService interface {
	Current() domain.Session
	Login(username, token string) (domain.Session, error)
	Logout() error
}

type SessionService struct {
	sessions repositories.ISessionRepository
}

func NewSessionService(sessions repositories.ISessionRepository) ISessionService {
	return &SessionService{sessions: sessions}
}

func (s *SessionService) Current() domain.Session {
	return s.sessions.Current()
}

// Login persists the identity and clears the guest quota counter:
// authenticated users are not rate-limited.
func (s *SessionService) Login(username, token string) (domain.Session, error) {
	req := LoginRequest{Username: username, Token: token}
	if err := validate.Struct(req); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", errors.ErrInvalidLogin, err)
	}

	session := domain.Session{Username: username, Token: token}
	if err := s.sessions.Save(session); err != nil {
		return domain.Session{}, err
	}
	if err := s.sessions.ClearGuestCount(); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Logout reverts the identity to anonymous. The upload registry, the
// download history and the guest counter are machine-scoped, not identity
// secrets: they survive.
func (s *SessionService) Logout() error {
	return s.sessions.Clear()
}
