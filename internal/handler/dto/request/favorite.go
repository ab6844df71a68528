package request

import (
	"stayquest/internal/usecase"
)

type AddFavoriteRequest struct {
	PlaceID  string  `json:"placeId" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Vicinity *string `json:"vicinity"`
	PhotoRef *string `json:"photoRef"`
}

func (r *AddFavoriteRequest) ToInput() usecase.AddFavoriteInput {
	return usecase.AddFavoriteInput{
		PlaceID:  r.PlaceID,
		Name:     r.Name,
		Vicinity: r.Vicinity,
		PhotoRef: r.PhotoRef,
	}
}
