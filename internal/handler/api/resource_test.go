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

type ResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.ResourceHandler
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockQueries)

	s.router.GET("/resources/availability", s.handler.Availability)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func availabilityURL(businessID uuid.UUID, rtype string, start, end time.Time) string {
	return fmt.Sprintf("/resources/availability?business_id=%s&type=%s&start=%s&end=%s",
		businessID, rtype, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
}

func (s *ResourceHandlerTestSuite) TestAvailability() {
	businessID := uuid.New()
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(time.Hour)

	s.Run("success: returns the free resource views", func() {
		views := []*queries.ResourceView{
			{ID: uuid.New(), BusinessID: businessID, Type: "court", Status: "available"},
			{ID: uuid.New(), BusinessID: businessID, Type: "court", Status: "available"},
		}
		s.mockQueries.EXPECT().
			ListFreeResources(gomock.Any(), businessID, gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL(businessID, "court", start, end), nil, "")
		s.Equal(http.StatusOK, w.Code)

		var got []*response.ResourceResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), w.Body, &got))
		s.Len(got, 2)
		s.Equal(views[0].ID, got[0].ID)
	})

	s.Run("success: empty result encodes as an empty array", func() {
		s.mockQueries.EXPECT().
			ListFreeResources(gomock.Any(), businessID, gomock.Nil(), gomock.Any(), gomock.Any()).
			Return([]*queries.ResourceView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL(businessID, "court", start, end), nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("failure: malformed business id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/resources/availability?business_id=bad&type=court&start=%s&end=%s",
				start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)), nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("failure: unknown resource type returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL(businessID, "spaceship", start, end), nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("failure: inverted window returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL(businessID, "court", end, start), nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("failure: query error returns 500", func() {
		s.mockQueries.EXPECT().
			ListFreeResources(gomock.Any(), businessID, gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			availabilityURL(businessID, "court", start, end), nil, "")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
