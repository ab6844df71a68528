//go:build unit

package builder

import (
	"time"

	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// SessionBuilder produces retrieved checkout sessions in the shape the
// payment provider reports them.
type SessionBuilder struct {
	ID              string
	PaymentStatus   string
	PaymentIntentID string
	HotelName       string
	CheckIn         string
	CheckOut        string
	UserID          string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:              "cs_test_123",
		PaymentStatus:   "paid",
		PaymentIntentID: "pi_test_123",
		HotelName:       "Grand Plaza Hotel",
		CheckIn:         "2025-07-01",
		CheckOut:        "2025-07-03",
		UserID:          uuid.NewString(),
	}
}

func (b *SessionBuilder) WithPaymentStatus(status string) *SessionBuilder {
	b.PaymentStatus = status
	return b
}

func (b *SessionBuilder) WithPaymentIntentID(id string) *SessionBuilder {
	b.PaymentIntentID = id
	return b
}

func (b *SessionBuilder) WithUserID(id string) *SessionBuilder {
	b.UserID = id
	return b
}

func (b *SessionBuilder) WithHotelName(name string) *SessionBuilder {
	b.HotelName = name
	return b
}

func (b *SessionBuilder) BuildReadModel() *readmodel.CheckoutSessionRM {
	return &readmodel.CheckoutSessionRM{
		ID:              b.ID,
		PaymentStatus:   b.PaymentStatus,
		PaymentIntentID: b.PaymentIntentID,
		HotelName:       b.HotelName,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		UserID:          b.UserID,
	}
}

type BookingBuilder struct {
	ID        uuid.UUID
	HotelName string
	CheckIn   string
	CheckOut  string
	UserID    uuid.UUID
	PaymentID string
	Status    string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		HotelName: "Grand Plaza Hotel",
		CheckIn:   "2025-07-01",
		CheckOut:  "2025-07-03",
		UserID:    uuid.New(),
		PaymentID: "pi_test_123",
		Status:    "confirmed",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithPaymentID(id string) *BookingBuilder {
	b.PaymentID = id
	return b
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:        b.ID,
		HotelName: b.HotelName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		UserID:    b.UserID,
		PaymentID: b.PaymentID,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
