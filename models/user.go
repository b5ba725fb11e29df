package models

import "time"

// User represents an account of the authoritative store.
// A user owns every remote note and tombstone stamped with its UserID.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password sent on register and login.
	// It is never persisted and never returned by the server.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored by the server.
	PasswordHash string `json:"-"`

	// Verified reports whether the account identity has been verified.
	// Unverified accounts may authenticate but clients do not sync them.
	Verified bool `json:"verified"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the locally persisted identity of the signed-in user.
type Session struct {
	UserID   int64
	Login    string
	Token    string
	Verified bool
}

// IsAuthenticated reports whether the session carries a usable identity.
func (s Session) IsAuthenticated() bool {
	return s.UserID > 0 && s.Token != ""
}
