package models

import "time"

// User is the public shape of an account, also used as the session record.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	PhotoURL        string    `json:"photoURL,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	LastLoginAt     time.Time `json:"lastLoginAt"`
	Provider        string    `json:"provider,omitempty"`
}

// StoredUser is what the mock user database keeps: the user plus a plaintext
// password. Acceptable only because this store simulates a provider.
type StoredUser struct {
	User
	Password string `json:"password"`
}

// ProfilePatch enumerates the profile fields that can be updated.
// A nil field leaves the stored value unchanged.
type ProfilePatch struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	PhotoURL  *string `json:"photoURL"`
}
