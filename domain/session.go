package domain

// GuestNamespace is the storage namespace used when nobody is logged in.
const GuestNamespace = "guest"

// Session is the identity of the current process: anonymous until both a
// display name and an opaque token have been persisted by a login.
type Session struct {
	Username string
	Token    string
}

// IsAuthenticated is derived: true iff a session token is present.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Namespace returns the storage key suffix isolating this user's download
// history. Anonymous sessions share the guest namespace.
func (s Session) Namespace() string {
	if s.Username == "" {
		return GuestNamespace
	}
	return s.Username
}
