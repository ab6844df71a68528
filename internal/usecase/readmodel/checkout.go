package readmodel

// CheckoutSessionRM mirrors the slice of a provider-hosted checkout session
// this system reads back: payment state plus the booking intent echoed from
// the session metadata. Metadata fields are raw strings; completeness is
// validated by the reconciliation flow, not here.
type CheckoutSessionRM struct {
	ID              string `json:"id"`
	PaymentStatus   string `json:"payment_status"`
	PaymentIntentID string `json:"payment_intent_id"`
	HotelName       string `json:"hotel_name"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	UserID          string `json:"user_id"`
}
