//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/dto/response"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/httptest"
	queriesmock "booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EntitlementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEntitlementQueries
	handler     *api.EntitlementHandler
	customerID  uuid.UUID
}

func (s *EntitlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.customerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEntitlementQueries(s.mockCtrl)
	s.handler = api.NewEntitlementHandler(s.mockQueries)

	// Mock authentication middleware for testing
	s.router.GET("/customers/me/entitlements", func(c *gin.Context) {
		c.Set("customer_id", s.customerID)
		c.Next()
	}, s.handler.ListMine)
}

func (s *EntitlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEntitlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntitlementHandlerTestSuite))
}

func (s *EntitlementHandlerTestSuite) TestListMine() {
	const url = "/customers/me/entitlements"

	s.Run("success: returns the customer's entitlement views", func() {
		serviceID := uuid.New()
		expiry := time.Now().Add(24 * time.Hour)
		views := []*queries.EntitlementView{
			{ID: uuid.New(), Source: "direct", ServiceID: &serviceID, RemainingUsage: 3, IsValid: true},
			{ID: uuid.New(), Source: "membership", ExpiresAt: &expiry, RemainingUsage: -1, IsValid: true},
		}
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, w.Code)

		var got []*response.EntitlementResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), w.Body, &got))
		s.Len(got, 2)
		s.Equal("direct", got[0].Source)
		s.True(got[1].IsValid)
	})

	s.Run("success: no entitlements encodes as an empty array", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID).
			Return([]*queries.EntitlementView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("failure: query error returns 500", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID).
			Return(nil, fmt.Errorf("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
