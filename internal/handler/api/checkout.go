package api

import (
	"errors"
	"net/http"

	reqdto "stayquest/internal/handler/dto/request"
	resdto "stayquest/internal/handler/dto/response"
	"stayquest/internal/handler/middleware"
	"stayquest/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Create checkout session
// @Description Create a hosted checkout session for a booking and return its URL
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutSessionRequest true "Checkout request"
// @Success 200 {object} resdto.CreateCheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay dates",
		})
		return
	}

	url, err := h.checkoutUseCase.CreateSession(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCheckoutRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checkout request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CreateCheckoutSessionResponse{URL: url})
}

// @Summary Get checkout session
// @Description Retrieve a checkout session's payment status and metadata
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} readmodel.CheckoutSessionRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/sessions [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "session_id query parameter is required",
		})
		return
	}

	session, err := h.checkoutUseCase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is currently unavailable",
			})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
