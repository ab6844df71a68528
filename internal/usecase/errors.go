package usecase

import "errors"

var (
	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Checkout / reconciliation errors
	ErrInvalidCheckoutRequest = errors.New("missing booking information")
	ErrSessionNotFound        = errors.New("checkout session not found")
	ErrSessionRetrieval       = errors.New("failed to retrieve checkout session")
	ErrPaymentIncomplete      = errors.New("payment not completed")
	ErrMissingMetadata        = errors.New("missing booking metadata")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Places errors
	ErrPlaceNotFound      = errors.New("place not found")
	ErrPlacesLookupFailed = errors.New("places lookup failed")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
