package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// User is an administrator allowed to publish newsletters.
type User struct {
	ID       UserID
	Username string
	// PasswordHash is a self-describing PHC string, never the raw password.
	PasswordHash string
}
