package api

import (
	"net/http"

	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EntitlementHandler struct {
	entitlementQueries queries.EntitlementQueries
}

func NewEntitlementHandler(entitlementQueries queries.EntitlementQueries) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementQueries: entitlementQueries,
	}
}

// @Summary List my entitlements
// @Description All entitlements held by the authenticated customer with current validity
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EntitlementResponse
// @Failure 401 {object} map[string]string
// @Router /customers/me/entitlements [get]
func (h *EntitlementHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.entitlementQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.EntitlementResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromEntitlementView(v)
	}

	c.JSON(http.StatusOK, response)
}
