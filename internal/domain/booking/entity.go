package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

// Reservation claims a resource for an interval on behalf of an appointment.
// Cancellation tombstones the row; rows are never deleted so historical
// appointments stay resolvable.
type Reservation struct {
	id            uuid.UUID
	resourceID    uuid.UUID
	appointmentID uuid.UUID
	interval      Interval
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(resourceID, appointmentID uuid.UUID, interval Interval) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		resourceID:    resourceID,
		appointmentID: appointmentID,
		interval:      interval,
		status:        StatusActive,
	}
}

func ReconstructReservation(
	id, resourceID, appointmentID uuid.UUID,
	interval Interval,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		resourceID:    resourceID,
		appointmentID: appointmentID,
		interval:      interval,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// Blocks reports whether this reservation makes the resource busy for the
// requested interval. Tombstoned reservations never block.
func (r *Reservation) Blocks(requested Interval) bool {
	return r.status == StatusActive && r.interval.Overlaps(requested)
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) ResourceID() uuid.UUID    { return r.resourceID }
func (r *Reservation) AppointmentID() uuid.UUID { return r.appointmentID }
func (r *Reservation) Interval() Interval       { return r.interval }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
