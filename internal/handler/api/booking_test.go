//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayquest/internal/handler/api"
	resdto "stayquest/internal/handler/dto/response"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase"
	"stayquest/internal/usecase/readmodel"
	"stayquest/tests/common/builder"
	"stayquest/tests/common/httptest"
	usecasemock "stayquest/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
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

	s.router.POST("/bookings/verify", s.handler.Verify)
	s.router.GET("/bookings", authed(s.handler.List))
	s.router.POST("/bookings/:id/cancel", authed(s.handler.Cancel))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestVerify() {
	url := "/bookings/verify"

	s.Run("success: 200 OK with newly created booking", func() {
		created := builder.NewBookingBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(&usecase.ReconcileResult{Booking: created, Created: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")

		var response resdto.VerifyBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Created)
		s.Equal(created.PaymentID, response.Booking.PaymentID)
	})

	s.Run("success: repeated verification returns existing booking", func() {
		existing := builder.NewBookingBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(&usecase.ReconcileResult{Booking: existing, Created: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")

		var response resdto.VerifyBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Created)
	})

	s.Run("error: 400 Bad Request when sessionId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "sessionId")
	})

	s.Run("error: 404 Not Found for unknown session", func() {
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_unknown").
			Return(nil, usecase.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_unknown"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 Bad Request when payment is not settled", func() {
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(nil, usecase.ErrPaymentIncomplete)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment")
	})

	s.Run("error: 400 Bad Request when metadata is incomplete", func() {
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(nil, usecase.ErrMissingMetadata)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "booking details")
	})

	s.Run("error: 502 Bad Gateway when provider is unreachable", func() {
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(nil, usecase.ErrSessionRetrieval)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})

	// 照合フローはセンチネルを生のまま返すとは限らない。原因をマークして
	// 返しても同じステータスに落ちること。
	s.Run("error: marked errors map to the same statuses", func() {
		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(nil, errs.Mark(errs.New("missing hotelName"), usecase.ErrMissingMetadata))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "booking details")

		s.mockUseCase.EXPECT().Reconcile(gomock.Any(), "cs_test_123").
			Return(nil, errs.Mark(errs.New("provider timeout"), usecase.ErrSessionRetrieval))

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"sessionId": "cs_test_123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: 200 OK with user bookings", func() {
		expected := builder.NewBookingBuilder().WithUserID(s.userID).BuildReadModel()
		s.mockUseCase.EXPECT().GetUserBookings(gomock.Any(), s.userID).
			Return([]*readmodel.BookingRM{expected}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*readmodel.BookingRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(expected.ID, response[0].ID)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: 204 No Content", func() {
		bookingID := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for someone else's booking", func() {
		bookingID := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(usecase.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
