package places

import (
	"context"
	"strings"

	"stayquest/internal/infra"
	"stayquest/internal/pkg/config"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase/readmodel"

	"googlemaps.github.io/maps"
)

type GoogleClient struct {
	client *maps.Client
}

func NewGoogleClient(cfg config.PlacesConfig) (*GoogleClient, error) {
	c, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize places client")
	}
	return &GoogleClient{client: c}, nil
}

func (g *GoogleClient) SearchNearby(ctx context.Context, lat, lng float64, radius uint) ([]*readmodel.HotelSummaryRM, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   radius,
		Type:     maps.PlaceTypeLodging,
	}

	resp, err := g.client.NearbySearch(ctx, req)
	if err != nil {
		if isZeroResults(err) {
			return []*readmodel.HotelSummaryRM{}, nil
		}
		return nil, errs.Wrap(err, "nearby search failed")
	}

	hotels := make([]*readmodel.HotelSummaryRM, 0, len(resp.Results))
	for _, r := range resp.Results {
		rm := &readmodel.HotelSummaryRM{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
			Rating:   r.Rating,
		}
		if len(r.Photos) > 0 {
			ref := r.Photos[0].PhotoReference
			rm.PhotoRef = &ref
		}
		hotels = append(hotels, rm)
	}

	return hotels, nil
}

func (g *GoogleClient) GetDetails(ctx context.Context, placeID string) (*readmodel.HotelDetailsRM, error) {
	req := &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskPhotos,
			maps.PlaceDetailsFieldMaskTypes,
		},
	}

	resp, err := g.client.PlaceDetails(ctx, req)
	if err != nil {
		if isNotFound(err) {
			return nil, infra.WrapRepoErr("place not found", err, infra.KindNotFound)
		}
		return nil, errs.Wrap(err, "place details lookup failed")
	}

	rm := &readmodel.HotelDetailsRM{
		PlaceID: placeID,
		Name:    resp.Name,
		Rating:  resp.Rating,
		Address: resp.FormattedAddress,
		Types:   resp.Types,
	}
	for _, p := range resp.Photos {
		rm.PhotoRefs = append(rm.PhotoRefs, p.PhotoReference)
	}

	return rm, nil
}

// The maps client folds the API status into the error string, so status
// classification has to match on it.
func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "NOT_FOUND") ||
		strings.Contains(err.Error(), "INVALID_REQUEST")
}

func isZeroResults(err error) bool {
	return strings.Contains(err.Error(), "ZERO_RESULTS")
}
