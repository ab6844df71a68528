//go:build unit

package builder

import (
	"time"

	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        b.ID,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}
