package user

import (
	"time"

	"github.com/google/uuid"
)

// User account. Auth only; profile fields may come later.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
