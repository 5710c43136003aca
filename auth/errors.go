package auth

import "errors"

// Store failures are surfaced to callers as rejected operations carrying a
// human-readable message. Handlers map them onto HTTP statuses.
var (
	ErrUserNotFound       = errors.New("no account found with this email")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrProviderMismatch   = errors.New("password reset is only available for email/password accounts")
	ErrNotAuthenticated   = errors.New("not signed in")
)
