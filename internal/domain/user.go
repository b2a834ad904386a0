package domain

import "time"

// User represents a registered client of the salon.
// Email is the unique key; the record is immutable after registration.
type User struct {
	FirstName string
	LastName  string
	Email     string
	Password  string // stored as an opaque string, no hashing in current scope
	CreatedAt time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
