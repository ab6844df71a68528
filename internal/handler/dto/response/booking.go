package response

import "stayquest/internal/usecase/readmodel"

type VerifyBookingResponse struct {
	Booking *readmodel.BookingRM `json:"booking"`
	Created bool                 `json:"created"`
}
