package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteRM struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	Name      string    `json:"name"`
	Vicinity  *string   `json:"vicinity,omitempty"`
	PhotoRef  *string   `json:"photo_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
