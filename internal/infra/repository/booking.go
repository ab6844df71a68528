package repository

import (
	"context"
	"time"

	"stayquest/internal/domain/booking"
	"stayquest/internal/infra"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stayDateLayout = "2006-01-02"

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	const stmt = `
INSERT INTO bookings (id, hotel_name, check_in, check_out, user_id, payment_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, hotel_name, check_in, check_out, user_id, payment_id, status, created_at`

	row := r.pool.QueryRow(ctx, stmt,
		b.ID(),
		b.HotelName(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.UserID(),
		b.PaymentID(),
		b.Status().String(),
	)

	rm, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return rm, nil
}

func (r *BookingRepository) FindByPaymentID(ctx context.Context, paymentID string) (*readmodel.BookingRM, error) {
	const query = `
SELECT id, hotel_name, check_in, check_out, user_id, payment_id, status, created_at
FROM bookings
WHERE payment_id = $1`

	rm, err := scanBooking(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by payment ID", err)
	}

	return rm, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	const query = `
SELECT id, hotel_name, check_in, check_out, user_id, payment_id, status, created_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	defer rows.Close()

	result := make([]*readmodel.BookingRM, 0)
	for rows.Next() {
		rm, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// CancelByID only touches rows owned by userID; cancelling someone else's
// booking reports not found.
func (r *BookingRepository) CancelByID(ctx context.Context, id, userID uuid.UUID) error {
	const stmt = `
UPDATE bookings
SET status = $3
WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, stmt, id, userID, booking.StatusCancelled.String())
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	var checkIn, checkOut time.Time

	err := row.Scan(
		&rm.ID,
		&rm.HotelName,
		&checkIn,
		&checkOut,
		&rm.UserID,
		&rm.PaymentID,
		&rm.Status,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.CheckIn = checkIn.Format(stayDateLayout)
	rm.CheckOut = checkOut.Format(stayDateLayout)
	return &rm, nil
}
