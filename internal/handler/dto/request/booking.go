package request

type VerifyBookingRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
