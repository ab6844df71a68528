package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayDate   = errors.New("invalid stay date")
	ErrInvalidStayRange  = errors.New("check-in must be before check-out")
	ErrIncompleteDetails = errors.New("incomplete booking details")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

const stayDateLayout = "2006-01-02"

// Stay is a calendar-date check-in/check-out pair. Construction does not
// require check-in to precede check-out; callers that accept user input
// validate ordering with ValidateRange.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(stayDateLayout, checkIn)
	if err != nil {
		return Stay{}, ErrInvalidStayDate
	}
	out, err := time.Parse(stayDateLayout, checkOut)
	if err != nil {
		return Stay{}, ErrInvalidStayDate
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

func (s Stay) CheckInString() string {
	return s.checkIn.Format(stayDateLayout)
}

func (s Stay) CheckOutString() string {
	return s.checkOut.Format(stayDateLayout)
}

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func (s Stay) ValidateRange() error {
	if !s.checkIn.Before(s.checkOut) {
		return ErrInvalidStayRange
	}
	return nil
}

// Details is the typed form of the booking intent carried through a checkout
// session. All four fields are required; NewDetails rejects anything less so
// incomplete payloads never reach persistence.
type Details struct {
	hotelName string
	stay      Stay
	userID    uuid.UUID
}

func NewDetails(hotelName, checkIn, checkOut, userID string) (Details, error) {
	hotelName = strings.TrimSpace(hotelName)
	if hotelName == "" || checkIn == "" || checkOut == "" || userID == "" {
		return Details{}, ErrIncompleteDetails
	}

	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return Details{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return Details{}, ErrIncompleteDetails
	}

	return Details{hotelName: hotelName, stay: stay, userID: uid}, nil
}

func (d Details) HotelName() string {
	return d.hotelName
}

func (d Details) Stay() Stay {
	return d.stay
}

func (d Details) UserID() uuid.UUID {
	return d.userID
}
