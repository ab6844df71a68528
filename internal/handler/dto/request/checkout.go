package request

import (
	"stayquest/internal/domain/booking"
	"stayquest/internal/usecase"

	"github.com/google/uuid"
)

type CreateCheckoutSessionRequest struct {
	HotelID   string `json:"hotelId" binding:"required"`
	HotelName string `json:"hotelName" binding:"required"`
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
}

// ToInput binds the request to a checkout intent. Date ordering is enforced
// here, before money changes hands; sessions created outside this endpoint
// are reconciled as-is.
func (r *CreateCheckoutSessionRequest) ToInput(userID uuid.UUID) (usecase.CreateSessionInput, error) {
	stay, err := booking.NewStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return usecase.CreateSessionInput{}, err
	}
	if err := stay.ValidateRange(); err != nil {
		return usecase.CreateSessionInput{}, err
	}

	return usecase.CreateSessionInput{
		HotelID:   r.HotelID,
		HotelName: r.HotelName,
		CheckIn:   stay.CheckInString(),
		CheckOut:  stay.CheckOutString(),
		UserID:    userID,
	}, nil
}
