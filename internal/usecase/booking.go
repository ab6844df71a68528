package usecase

import (
	"context"
	"log/slog"
	"strings"

	"stayquest/internal/domain/booking"
	"stayquest/internal/infra"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// payment_status value the provider reports once the charge settled.
const paymentStatusPaid = "paid"

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*readmodel.BookingRM, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	CancelByID(ctx context.Context, id, userID uuid.UUID) error
}

// ReconcileResult reports whether the call materialized the booking or found
// it already persisted by an earlier (or concurrent) reconciliation.
type ReconcileResult struct {
	Booking *readmodel.BookingRM
	Created bool
}

type BookingUseCase interface {
	Reconcile(ctx context.Context, sessionID string) (*ReconcileResult, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, id, userID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	gateway     PaymentGateway
	bookingRepo BookingRepository
}

func NewBookingUseCase(gateway PaymentGateway, bookingRepo BookingRepository) BookingUseCase {
	return &bookingUseCaseImpl{
		gateway:     gateway,
		bookingRepo: bookingRepo,
	}
}

// Reconcile turns a paid checkout session into exactly one persisted booking.
// It is called from both the client confirmation flow and the server verify
// endpoint; the unique constraint on payment_id makes the insert race safe:
// the loser of a concurrent insert re-reads and returns the winner's row.
func (b *bookingUseCaseImpl) Reconcile(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidCheckoutRequest
	}

	session, err := b.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrSessionRetrieval)
	}

	if session.PaymentStatus != paymentStatusPaid {
		return nil, ErrPaymentIncomplete
	}
	if session.PaymentIntentID == "" {
		return nil, ErrSessionRetrieval
	}

	details, err := booking.NewDetails(session.HotelName, session.CheckIn, session.CheckOut, session.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingMetadata)
	}

	existing, err := b.bookingRepo.FindByPaymentID(ctx, session.PaymentIntentID)
	if err == nil {
		// Already reconciled; this call is a no-op re-confirmation.
		return &ReconcileResult{Booking: existing, Created: false}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewConfirmedBooking(details, session.PaymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	created, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// A concurrent reconcile for the same session won the insert.
			winner, findErr := b.bookingRepo.FindByPaymentID(ctx, session.PaymentIntentID)
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			return &ReconcileResult{Booking: winner, Created: false}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ReconcileResult{Booking: created, Created: true}, nil
}

func (b *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	bookings, err := b.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		// List reads degrade to an empty dashboard rather than failing the page.
		slog.Warn("failed to fetch user bookings", "user_id", userID, "error", err.Error())
		return []*readmodel.BookingRM{}, nil
	}

	return bookings, nil
}

func (b *bookingUseCaseImpl) CancelBooking(ctx context.Context, id, userID uuid.UUID) error {
	if err := b.bookingRepo.CancelByID(ctx, id, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
