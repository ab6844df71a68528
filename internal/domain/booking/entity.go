package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentID = errors.New("payment identifier is required")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// Booking is one paid hotel stay. The payment identifier is the idempotency
// key for reconciliation: at most one booking exists per payment identifier,
// enforced by a unique constraint in storage.
type Booking struct {
	id        uuid.UUID
	details   Details
	paymentID string
	status    Status
	createdAt time.Time
}

// NewConfirmedBooking materializes a booking from a paid checkout session.
func NewConfirmedBooking(details Details, paymentID string) (*Booking, error) {
	if paymentID == "" {
		return nil, ErrMissingPaymentID
	}

	return &Booking{
		id:        uuid.New(),
		details:   details,
		paymentID: paymentID,
		status:    StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	details Details,
	paymentID string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		details:   details,
		paymentID: paymentID,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Details() Details     { return b.details }
func (b *Booking) HotelName() string    { return b.details.HotelName() }
func (b *Booking) Stay() Stay           { return b.details.Stay() }
func (b *Booking) UserID() uuid.UUID    { return b.details.UserID() }
func (b *Booking) PaymentID() string    { return b.paymentID }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
