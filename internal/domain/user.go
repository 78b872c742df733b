package domain

import "time"

// User is the account record referenced by every issued token. Tokens carry
// only the user id and email; the current record is re-read on each request.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	ImageURL     string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
