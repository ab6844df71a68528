package usecase

import (
	"context"
	"strings"

	"stayquest/internal/infra"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase/readmodel"
)

// PlacesClient wraps the external places-search provider.
type PlacesClient interface {
	SearchNearby(ctx context.Context, lat, lng float64, radius uint) ([]*readmodel.HotelSummaryRM, error)
	GetDetails(ctx context.Context, placeID string) (*readmodel.HotelDetailsRM, error)
}

type HotelUseCase interface {
	SearchNearby(ctx context.Context, lat, lng float64, radius uint) ([]*readmodel.HotelSummaryRM, error)
	GetDetails(ctx context.Context, placeID string) (*readmodel.HotelDetailsRM, error)
}

type hotelUseCaseImpl struct {
	places        PlacesClient
	defaultRadius uint
}

func NewHotelUseCase(places PlacesClient, defaultRadius uint) HotelUseCase {
	return &hotelUseCaseImpl{
		places:        places,
		defaultRadius: defaultRadius,
	}
}

func (h *hotelUseCaseImpl) SearchNearby(ctx context.Context, lat, lng float64, radius uint) ([]*readmodel.HotelSummaryRM, error) {
	if radius == 0 {
		radius = h.defaultRadius
	}

	hotels, err := h.places.SearchNearby(ctx, lat, lng, radius)
	if err != nil {
		return nil, errs.Mark(err, ErrPlacesLookupFailed)
	}

	return hotels, nil
}

func (h *hotelUseCaseImpl) GetDetails(ctx context.Context, placeID string) (*readmodel.HotelDetailsRM, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, ErrPlaceNotFound
	}

	details, err := h.places.GetDetails(ctx, placeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, errs.Mark(err, ErrPlacesLookupFailed)
	}

	return details, nil
}
