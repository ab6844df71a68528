//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayquest/internal/handler/api"
	"stayquest/internal/usecase"
	"stayquest/internal/usecase/readmodel"
	"stayquest/tests/common/httptest"
	usecasemock "stayquest/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoriteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockFavoriteUseCase
	handler     *api.FavoriteHandler
	userID      uuid.UUID
}

func (s *FavoriteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockFavoriteUseCase(s.mockCtrl)
	s.handler = api.NewFavoriteHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Mock middleware behavior: inject the authenticated user
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.GET("/favorites", authed(s.handler.List))
	s.router.POST("/favorites", authed(s.handler.Add))
	s.router.DELETE("/favorites/:place_id", authed(s.handler.Remove))
}

func (s *FavoriteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFavoriteHandlerSuite(t *testing.T) {
	suite.Run(t, new(FavoriteHandlerTestSuite))
}

func favoriteRM(userID uuid.UUID, placeID string) *readmodel.FavoriteRM {
	vicinity := "Downtown"
	return &readmodel.FavoriteRM{
		ID:       uuid.New(),
		UserID:   userID,
		PlaceID:  placeID,
		Name:     "Grand Plaza Hotel",
		Vicinity: &vicinity,
	}
}

func (s *FavoriteHandlerTestSuite) TestList() {
	url := "/favorites"

	s.Run("success: 200 OK with user favorites", func() {
		expected := favoriteRM(s.userID, "place-001")
		s.mockUseCase.EXPECT().List(gomock.Any(), s.userID).
			Return([]*readmodel.FavoriteRM{expected}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*readmodel.FavoriteRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(expected.PlaceID, response[0].PlaceID)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *FavoriteHandlerTestSuite) TestAdd() {
	url := "/favorites"
	body := map[string]any{
		"placeId":  "place-001",
		"name":     "Grand Plaza Hotel",
		"vicinity": "Downtown",
	}

	s.Run("success: 201 Created", func() {
		expected := favoriteRM(s.userID, "place-001")
		s.mockUseCase.EXPECT().Add(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in usecase.AddFavoriteInput) (*readmodel.FavoriteRM, error) {
				s.Equal("place-001", in.PlaceID)
				s.Equal("Grand Plaza Hotel", in.Name)
				return expected, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response readmodel.FavoriteRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.PlaceID, response.PlaceID)
	})

	s.Run("error: 400 Bad Request when placeId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"name": "Grand Plaza Hotel"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request when validation fails downstream", func() {
		s.mockUseCase.EXPECT().Add(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, usecase.ErrDomainValidationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "favorite")
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *FavoriteHandlerTestSuite) TestRemove() {
	s.Run("success: 204 No Content", func() {
		s.mockUseCase.EXPECT().Remove(gomock.Any(), s.userID, "place-001").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/favorites/place-001", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	// 冪等な削除なので存在しないplace_idでも成功扱い
	s.Run("success: 204 No Content for absent favorite", func() {
		s.mockUseCase.EXPECT().Remove(gomock.Any(), s.userID, "place-404").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/favorites/place-404", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/favorites/place-001", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
