package api

import (
	"errors"
	"net/http"
	"strconv"

	"stayquest/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

// @Summary Search nearby hotels
// @Description Search lodging places around a coordinate
// @Tags hotels
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query integer false "Search radius in meters"
// @Success 200 {array} readmodel.HotelSummaryRM
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /hotels/nearby [get]
func (h *HotelHandler) SearchNearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lng query parameters are required",
		})
		return
	}

	var radius uint
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "radius must be a positive integer",
			})
			return
		}
		radius = uint(parsed)
	}

	hotels, err := h.hotelUseCase.SearchNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Hotel search is currently unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// @Summary Get hotel details
// @Description Get details for a single place
// @Tags hotels
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {object} readmodel.HotelDetailsRM
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /hotels/{place_id} [get]
func (h *HotelHandler) GetDetails(c *gin.Context) {
	placeID := c.Param("place_id")

	details, err := h.hotelUseCase.GetDetails(c.Request.Context(), placeID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Hotel lookup is currently unavailable",
			})
		}
		return
	}

	c.JSON(http.StatusOK, details)
}
