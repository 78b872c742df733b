package domain

import "time"

// Address is the single shipping address kept per user. Name and email are
// snapshotted from the user record at write time.
type Address struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Mobile    string
	Flat      string
	Landmark  string
	Street    string
	City      string
	State     string
	Country   string
	PinCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
