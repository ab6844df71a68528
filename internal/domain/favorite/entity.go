package favorite

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPlaceID = errors.New("place identifier is required")
	ErrMissingName    = errors.New("place name is required")
)

// Favorite is a user's saved place. One row per (user, place) pair.
type Favorite struct {
	id        uuid.UUID
	userID    uuid.UUID
	placeID   string
	name      string
	vicinity  *string
	photoRef  *string
	createdAt time.Time
}

func NewFavorite(userID uuid.UUID, placeID, name string, vicinity, photoRef *string) (*Favorite, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, ErrMissingPlaceID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	return &Favorite{
		id:       uuid.New(),
		userID:   userID,
		placeID:  placeID,
		name:     name,
		vicinity: vicinity,
		photoRef: photoRef,
	}, nil
}

func ReconstructFavorite(
	id, userID uuid.UUID,
	placeID, name string,
	vicinity, photoRef *string,
	createdAt time.Time,
) *Favorite {
	return &Favorite{
		id:        id,
		userID:    userID,
		placeID:   placeID,
		name:      name,
		vicinity:  vicinity,
		photoRef:  photoRef,
		createdAt: createdAt,
	}
}

func (f *Favorite) ID() uuid.UUID        { return f.id }
func (f *Favorite) UserID() uuid.UUID    { return f.userID }
func (f *Favorite) PlaceID() string      { return f.placeID }
func (f *Favorite) Name() string         { return f.name }
func (f *Favorite) Vicinity() *string    { return f.vicinity }
func (f *Favorite) PhotoRef() *string    { return f.photoRef }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
