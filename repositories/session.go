//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session.go -package=mocks
package repositories

import (
	"strconv"

	"pdfkita/domain"
)

// Keys for the identity and guest-quota state.
const (
	KeyUserToken         = "userToken"
	KeyUserName          = "userName"
	KeyGuestConvertCount = "guestConvertCount"
)

// ISessionRepository persists the process identity (opaque token plus display
// name) and the guest conversion counter. The counter is store-scoped, not
// account-scoped: logout does not reset it, login clears it.
type ISessionRepository interface {
	Current() domain.Session
	Save(session domain.Session) error
	Clear() error

	GuestCount() int
	IncrementGuestCount() error
	ClearGuestCount() error
}

type SessionRepository struct {
	store IStore
}

func NewSessionRepository(store IStore) ISessionRepository {
	return &SessionRepository{store: store}
}

// Current reads the two identity keys. Either one missing yields an
// anonymous session.
func (s *SessionRepository) Current() domain.Session {
	token, _ := s.store.Get(KeyUserToken)
	name, _ := s.store.Get(KeyUserName)
	return domain.Session{Username: name, Token: token}
}

func (s *SessionRepository) Save(session domain.Session) error {
	if err := s.store.Set(KeyUserToken, session.Token); err != nil {
		return err
	}
	return s.store.Set(KeyUserName, session.Username)
}

func (s *SessionRepository) Clear() error {
	if err := s.store.Remove(KeyUserToken); err != nil {
		return err
	}
	return s.store.Remove(KeyUserName)
}

// GuestCount reads the persisted counter; a missing or unparsable value
// counts as zero.
func (s *SessionRepository) GuestCount() int {
	raw, ok := s.store.Get(KeyGuestConvertCount)
	if !ok {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return count
}

func (s *SessionRepository) IncrementGuestCount() error {
	return s.store.Set(KeyGuestConvertCount, strconv.Itoa(s.GuestCount()+1))
}

func (s *SessionRepository) ClearGuestCount() error {
	return s.store.Remove(KeyGuestConvertCount)
}
