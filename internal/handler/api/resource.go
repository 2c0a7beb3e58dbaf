package api

import (
	"net/http"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/resource"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewResourceHandler(availabilityQueries queries.AvailabilityQueries) *ResourceHandler {
	return &ResourceHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List free resources
// @Description Candidate resources free for the whole requested window
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param business_id query string true "Business ID"
// @Param branch_id query string false "Branch ID"
// @Param type query string true "Resource type"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resources/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return
	}

	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid branch ID format",
			})
			return
		}
		branchID = &id
	}

	rtype, err := resource.NewType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource type",
		})
		return
	}

	interval, err := h.parseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	views, err := h.availabilityQueries.ListFreeResources(c.Request.Context(), businessID, branchID, rtype, interval)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ResourceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromResourceView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ResourceHandler) parseWindow(startRaw, endRaw string) (booking.Interval, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return booking.Interval{}, err
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return booking.Interval{}, err
	}
	return booking.NewInterval(start, end)
}
