package models

import "time"

// User is an account row. Email is nil when no address is attached.
// PasswordHash holds a bcrypt digest, never plaintext.
type User struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasEmail reports whether a non-empty email address is on file.
func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}
