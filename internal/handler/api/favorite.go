package api

import (
	"errors"
	"net/http"

	reqdto "stayquest/internal/handler/dto/request"
	"stayquest/internal/handler/middleware"
	"stayquest/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

// @Summary List favorites
// @Description List the authenticated user's favorite hotels
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.FavoriteRM
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	favorites, err := h.favoriteUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// @Summary Add favorite
// @Description Save a hotel to the authenticated user's favorites. Re-adding is a no-op.
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddFavoriteRequest true "Favorite to add"
// @Success 201 {object} readmodel.FavoriteRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	favorite, err := h.favoriteUseCase.Add(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid favorite data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// @Summary Remove favorite
// @Description Remove a hotel from the authenticated user's favorites
// @Tags favorites
// @Security BearerAuth
// @Param place_id path string true "Place ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /favorites/{place_id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	if err := h.favoriteUseCase.Remove(c.Request.Context(), userID, c.Param("place_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
