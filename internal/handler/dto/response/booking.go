package response

import (
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type PrepareBookingResponse struct {
	FreeResources  []*ResourceResponse `json:"freeResources"`
	AmountDueNow   int64               `json:"amountDueNow"`
	PolicyApplied  string              `json:"policyApplied"`
	HasRights      bool                `json:"hasRights"`
	RightsSource   *string             `json:"rightsSource,omitempty"`
	RightsDegraded bool                `json:"rightsDegraded"`
}

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resourceId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
}

type CommitBookingResponse struct {
	Reservations        []*ReservationResponse `json:"reservations"`
	EntitlementConsumed *uuid.UUID             `json:"entitlementConsumed,omitempty"`
}

func FromBookingIntent(intent *commands.BookingIntent) *PrepareBookingResponse {
	resp := &PrepareBookingResponse{
		FreeResources:  make([]*ResourceResponse, len(intent.CandidateResources)),
		AmountDueNow:   intent.AmountDueNow.Amount(),
		PolicyApplied:  intent.PolicyApplied.Kind.String(),
		HasRights:      intent.Rights.HasRights,
		RightsDegraded: intent.RightsDegraded,
	}
	for i, r := range intent.CandidateResources {
		resp.FreeResources[i] = FromResourceEntity(r)
	}
	if intent.Rights.HasRights {
		source := intent.Rights.Source.String()
		resp.RightsSource = &source
	}
	return resp
}

func FromReservation(res *booking.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            res.ID(),
		ResourceID:    res.ResourceID(),
		AppointmentID: res.AppointmentID(),
		StartTime:     res.Interval().Start(),
		EndTime:       res.Interval().End(),
		Status:        res.Status().String(),
	}
}

func FromCommitResult(result *commands.CommitResult) *CommitBookingResponse {
	resp := &CommitBookingResponse{
		Reservations:        make([]*ReservationResponse, len(result.Reservations)),
		EntitlementConsumed: result.EntitlementConsumed,
	}
	for i, r := range result.Reservations {
		resp.Reservations[i] = FromReservation(r)
	}
	return resp
}
