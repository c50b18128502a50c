//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	"slotbook/internal/usecase"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/httptest"
	"slotbook/tests/common/testutil"
	usecasemock "slotbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *usecasemock.MockReservationUseCase
	handler         *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockReservation)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.GET("/bookings/number/:number", s.handler.GetBookingByNumber)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/release-expired", authMiddleware, s.handler.ReleaseExpired)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnRM := builder.NewBookingBuilder().BuildRM()

	missing := []testCaseBooking{
		{name: "missing field: activity_id (required)", mutate: testutil.Field("activity_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: slot_start (required)", mutate: testutil.Field("slot_start", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: slot_end (required)", mutate: testutil.Field("slot_end", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: participants (required)", mutate: testutil.Field("participants", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_phone (required)", mutate: testutil.Field("customer_phone", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(returnRM, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), returnRM.Number)
	})

	s.Run("validation: required fields are enforced at the boundary", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: unknown activity returns 404", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrActivityNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: unavailable date returns 409 with the allowed weekdays", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, &usecase.DateUnavailableError{AllowedWeekdays: []string{"Sunday", "Saturday"}}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "allowed_weekdays")
		s.Contains(rec.Body.String(), "Saturday")
	})

	s.Run("error: full slot returns 409 with remaining spots", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, &usecase.CapacityError{Remaining: 2}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"remaining_spots":2`)
	})

	s.Run("error: unconfigured slot returns 400", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidSlot).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: too many participants returns 400", func() {
		s.mockReservation.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrTooManyParticipants).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnRM := builder.NewBookingBuilder().BuildRM()

	s.Run("success: returns 200 OK", func() {
		s.mockReservation.EXPECT().GetBooking(gomock.Any(), returnRM.ID).
			Return(returnRM, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnRM.ID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), returnRM.Number)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown booking returns 404", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, usecase.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("success: lookup by number", func() {
		s.mockReservation.EXPECT().GetBookingByNumber(gomock.Any(), returnRM.Number).
			Return(returnRM, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/number/"+returnRM.Number, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns the day's bookings", func() {
		date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		s.mockReservation.EXPECT().ListBookingsForDate(gomock.Any(), date).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2026-09-05", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2026-09-05", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockReservation.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: cancel refused returns 409", func() {
		s.mockReservation.EXPECT().CancelBooking(gomock.Any(), id).
			Return(usecase.ErrCancelRefused).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestReleaseExpired
// ================================================================================

func (s *BookingHandlerTestSuite) TestReleaseExpired() {
	url := "/bookings/release-expired"

	s.Run("success: sweeps with the default age", func() {
		s.mockReservation.EXPECT().ReleaseExpired(gomock.Any(), 30*time.Minute).
			Return(3, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"released":3`)
	})

	s.Run("success: honours older_than", func() {
		s.mockReservation.EXPECT().ReleaseExpired(gomock.Any(), time.Hour).
			Return(0, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?older_than=1h", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: invalid duration returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?older_than=soon", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: negative duration returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?older_than=-5m", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
