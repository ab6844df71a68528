package api

import (
	"errors"
	"net/http"

	reqdto "stayquest/internal/handler/dto/request"
	resdto "stayquest/internal/handler/dto/response"
	"stayquest/internal/handler/middleware"
	"stayquest/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Verify a paid checkout session
// @Description Reconcile a checkout session into exactly one booking. Safe to call repeatedly.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyBookingRequest true "Verify request"
// @Success 200 {object} resdto.VerifyBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/verify [post]
func (h *BookingHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "sessionId is required",
		})
		return
	}

	result, err := h.bookingUseCase.Reconcile(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		case errors.Is(err, usecase.ErrPaymentIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment has not been completed",
			})
		case errors.Is(err, usecase.ErrMissingMetadata):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Checkout session is missing booking details",
			})
		case errors.Is(err, usecase.ErrSessionRetrieval):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is currently unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyBookingResponse{
		Booking: result.Booking,
		Created: result.Created,
	})
}

// @Summary List user bookings
// @Description List the authenticated user's bookings, newest first
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.BookingRM
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookings, err := h.bookingUseCase.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary Cancel a booking
// @Description Cancel one of the authenticated user's bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
