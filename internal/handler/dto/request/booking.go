package request

import (
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type PrepareBookingRequest struct {
	ServiceID    uuid.UUID  `json:"service_id" binding:"required"`
	BusinessID   uuid.UUID  `json:"business_id" binding:"required"`
	BranchID     *uuid.UUID `json:"branch_id,omitempty"`
	ResourceType *string    `json:"resource_type,omitempty"`
	StartTime    time.Time  `json:"start_time" binding:"required"`
	EndTime      time.Time  `json:"end_time" binding:"required"`
}

// ToParams validates the window and resource type against the domain rules.
func (r PrepareBookingRequest) ToParams(customerID uuid.UUID) (commands.PrepareBookingParams, error) {
	interval, err := booking.NewInterval(r.StartTime, r.EndTime)
	if err != nil {
		return commands.PrepareBookingParams{}, err
	}

	var rtype *resource.Type
	if r.ResourceType != nil {
		t, err := resource.NewType(*r.ResourceType)
		if err != nil {
			return commands.PrepareBookingParams{}, err
		}
		rtype = &t
	}

	return commands.PrepareBookingParams{
		CustomerID:   customerID,
		ServiceID:    r.ServiceID,
		BusinessID:   r.BusinessID,
		BranchID:     r.BranchID,
		ResourceType: rtype,
		Interval:     interval,
	}, nil
}

// CommitBookingRequest re-sends the prepare fields because intents are not
// persisted server-side; the engine rebuilds the intent and claims the chosen
// resources in one request.
type CommitBookingRequest struct {
	PrepareBookingRequest
	AppointmentID     uuid.UUID   `json:"appointment_id" binding:"required"`
	ChosenResourceIDs []uuid.UUID `json:"chosen_resource_ids,omitempty"`
}
