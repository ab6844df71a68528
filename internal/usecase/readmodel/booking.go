package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID        uuid.UUID `json:"id"`
	HotelName string    `json:"hotel_name"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	UserID    uuid.UUID `json:"user_id"`
	PaymentID string    `json:"payment_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
