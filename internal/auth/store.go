package auth

import (
	"context"
	"time"
)

// Address is the registered delivery address attached to a user record.
type Address struct {
	City    string
	Street  string
	ZipCode string
}

func (a Address) String() string {
	return a.City + " " + a.Street + " " + a.ZipCode
}

// User is the stored principal record. The auth core reads it to validate
// credentials and to mint claims; it never mutates an existing record.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Username     string
	Role         string
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStore is the persistence surface the auth core depends on.
type UserStore interface {
	// Create inserts a new user. A duplicate email fails with
	// ErrDuplicatedEmail.
	Create(ctx context.Context, u *User) error
	// FindByEmail returns the user record for email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
