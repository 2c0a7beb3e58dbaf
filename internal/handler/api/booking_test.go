//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/entitlement"
	"booking-engine/internal/domain/payment"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/tests/common/builder"
	"booking-engine/tests/common/httptest"
	"booking-engine/tests/common/testutil"
	commandsmock "booking-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("customer_id", uuid.New())
		c.Next()
	}

	s.router.POST("/bookings/prepare", authMiddleware, s.handler.Prepare)
	s.router.POST("/bookings/commit", authMiddleware, s.handler.Commit)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) sampleIntent() *commands.BookingIntent {
	policy, err := payment.NewPolicy(payment.KindDepositRequired, 0.3)
	s.Require().NoError(err)
	money, err := payment.NewMoney(3000)
	s.Require().NoError(err)

	return &commands.BookingIntent{
		CustomerID:    uuid.New(),
		ServiceID:     uuid.New(),
		BusinessID:    uuid.New(),
		Rights:        entitlement.NoRights(),
		AmountDueNow:  money,
		PolicyApplied: policy,
	}
}

// ================================================================================
// TestPrepare
// ================================================================================

func (s *BookingHandlerTestSuite) TestPrepare() {
	url := "/bookings/prepare"
	reqBody := builder.NewBookingBuilder().BuildPrepareRequestDTO()

	s.Run("success: returns 200 with the booking intent", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(s.sampleIntent(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "amountDueNow")
	})

	s.Run("failure: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("failure: returns 409 when no resource is free", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNoAvailability).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("failure: returns 404 when service pricing is missing", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPolicyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("failure: returns 422 for a misconfigured policy", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidPolicy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	missing := []struct {
		name  string
		field string
	}{
		{name: "missing field: service_id (required)", field: "service_id"},
		{name: "missing field: business_id (required)", field: "business_id"},
		{name: "missing field: start_time (required)", field: "start_time"},
		{name: "missing field: end_time (required)", field: "end_time"},
	}
	for _, tc := range missing {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	s.Run("failure: returns 400 for an inverted window", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("start_time", reqBody.EndTime),
			testutil.Field("end_time", reqBody.StartTime),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCommit
// ================================================================================

func (s *BookingHandlerTestSuite) TestCommit() {
	url := "/bookings/commit"
	chosen := uuid.New()
	reqBody := builder.NewBookingBuilder().WithChosenResources(chosen).BuildCommitRequestDTO()

	s.Run("success: returns 201 with the committed reservations", func() {
		interval, err := booking.NewInterval(reqBody.StartTime, reqBody.EndTime)
		s.Require().NoError(err)
		reservation := booking.NewReservation(chosen, reqBody.AppointmentID, interval)

		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(s.sampleIntent(), nil).Times(1)
		s.mockCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any(), []uuid.UUID{chosen}, reqBody.AppointmentID).
			Return(&commands.CommitResult{Reservations: []*booking.Reservation{reservation}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), reservation.ID().String())
	})

	s.Run("failure: returns 409 when the resource was taken", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(s.sampleIntent(), nil).Times(1)
		s.mockCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrResourceConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("failure: returns 404 for a resource outside the candidates", func() {
		s.mockCommands.EXPECT().PrepareBooking(gomock.Any(), gomock.Any()).
			Return(s.sampleIntent(), nil).Times(1)
		s.mockCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("failure: returns 400 without an appointment id", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("appointment_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", id), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("failure: returns 404 for an unknown reservation", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", id), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("failure: returns 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
