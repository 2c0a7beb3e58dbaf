//go:build unit || e2e

package builder

import (
	"time"

	"booking-engine/internal/domain/booking"
	reqdto "booking-engine/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ServiceID         uuid.UUID
	BusinessID        uuid.UUID
	BranchID          *uuid.UUID
	ResourceType      *string
	StartTime         time.Time
	EndTime           time.Time
	AppointmentID     uuid.UUID
	ChosenResourceIDs []uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	rtype := "court"
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ServiceID:     uuid.New(),
		BusinessID:    uuid.New(),
		ResourceType:  &rtype,
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		AppointmentID: uuid.New(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildPrepareRequestDTO() reqdto.PrepareBookingRequest {
	return reqdto.PrepareBookingRequest{
		ServiceID:    b.ServiceID,
		BusinessID:   b.BusinessID,
		BranchID:     b.BranchID,
		ResourceType: b.ResourceType,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
	}
}

func (b *BookingBuilder) BuildCommitRequestDTO() reqdto.CommitBookingRequest {
	return reqdto.CommitBookingRequest{
		PrepareBookingRequest: b.BuildPrepareRequestDTO(),
		AppointmentID:         b.AppointmentID,
		ChosenResourceIDs:     b.ChosenResourceIDs,
	}
}

func (b *BookingBuilder) BuildInterval() (booking.Interval, error) {
	return booking.NewInterval(b.StartTime, b.EndTime)
}

// Fluent builder methods
func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithBusinessID(id uuid.UUID) *BookingBuilder {
	b.BusinessID = id
	return b
}

func (b *BookingBuilder) WithChosenResources(ids ...uuid.UUID) *BookingBuilder {
	b.ChosenResourceIDs = ids
	return b
}

func (b *BookingBuilder) WithoutResourceType() *BookingBuilder {
	b.ResourceType = nil
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}
