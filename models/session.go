package models

// SessionUser is the subset of account data exposed to the client session.
type SessionUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// Session describes the caller's authentication state as resolved from a
// request token. IsAuthenticated == true implies User != nil.
type Session struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	UserID          string       `json:"-"`
	User            *SessionUser `json:"user"`
}

// Unauthenticated returns the zero session used whenever an auth check fails.
func Unauthenticated() *Session {
	return &Session{}
}
