package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at creation time and immutable afterwards.
	UserID int64 `json:"id"`

	// Username is the display name of the user.
	// Free text, not guaranteed unique, and may be shown in UI.
	Username string `json:"username"`

	// Email is the unique login identifier of the account.
	// Matched case-sensitively; at most one user exists per email value.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
