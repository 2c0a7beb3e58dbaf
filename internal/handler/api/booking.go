package api

import (
	"errors"
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Prepare booking
// @Description Resolve rights, availability and the amount due for a booking window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PrepareBookingRequest true "Booking window"
// @Success 200 {object} resdto.PrepareBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/prepare [post]
func (h *BookingHandler) Prepare(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PrepareBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(customerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking window",
		})
		return
	}

	intent, err := h.bookingCommands.PrepareBooking(c.Request.Context(), params)
	if err != nil {
		h.respondPrepareError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingIntent(intent))
}

// @Summary Commit booking
// @Description Claim the chosen resources for the prepared window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommitBookingRequest true "Commit request"
// @Success 201 {object} resdto.CommitBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/commit [post]
func (h *BookingHandler) Commit(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CommitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(customerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking window",
		})
		return
	}

	intent, err := h.bookingCommands.PrepareBooking(c.Request.Context(), params)
	if err != nil {
		h.respondPrepareError(c, err)
		return
	}

	result, err := h.bookingCommands.CommitBooking(c.Request.Context(), intent, req.ChosenResourceIDs, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrResourceConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Resource was reserved by another booking",
			})
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Chosen resource is not in the candidate set",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}

// @Summary Cancel reservation
// @Description Tombstone a reservation so its window frees up
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelReservation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondPrepareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNoAvailability):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No resource is free for the requested window",
		})
	case errors.Is(err, errs.ErrPolicyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service pricing not found",
		})
	case errors.Is(err, errs.ErrInvalidPolicy):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Payment policy is misconfigured",
		})
	case errors.Is(err, errs.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking window",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
