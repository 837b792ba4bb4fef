package domain

import "context"

// User is a seeded credential record. Passwords are stored and compared in
// clear text: the login flow is this demo's SQL injection showcase and must
// stay byte-for-byte comparable.
type User struct {
	ID       int
	Username string
	Password string
	IsAdmin  bool
}

type UserRepository interface {
	GetByCredentials(ctx context.Context, username, password string) (*User, error)
}
