package memstore

import (
	"context"
	"sync"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReservationStore is an in-memory ReservationRepository with the same
// commit semantics as the Postgres one: the freeness check and the insert
// happen under one lock, so racing commits for an overlapping interval on
// the same resource produce exactly one winner.
type ReservationStore struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*booking.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		reservations: make(map[uuid.UUID]*booking.Reservation),
	}
}

func (s *ReservationStore) IsFree(_ context.Context, resourceID uuid.UUID, interval booking.Interval) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFreeLocked(resourceID, interval), nil
}

func (s *ReservationStore) FindAvailable(_ context.Context, resourceIDs []uuid.UUID, interval booking.Interval) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	free := make([]uuid.UUID, 0, len(resourceIDs))
	for _, id := range resourceIDs {
		if s.isFreeLocked(id, interval) {
			free = append(free, id)
		}
	}
	return free, nil
}

func (s *ReservationStore) Commit(_ context.Context, resourceID, appointmentID uuid.UUID, interval booking.Interval) (*booking.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isFreeLocked(resourceID, interval) {
		return nil, infra.WrapRepoErr("resource is already reserved for the interval", nil, infra.KindConflict)
	}

	res := booking.NewReservation(resourceID, appointmentID, interval)
	s.reservations[res.ID()] = res
	return res, nil
}

func (s *ReservationStore) Cancel(_ context.Context, reservationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[reservationID]
	if !ok || !res.IsActive() {
		return infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
	}

	if err := res.Cancel(); err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return nil
}

// Find returns a reservation by id, mainly for test assertions.
func (s *ReservationStore) Find(reservationID uuid.UUID) (*booking.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[reservationID]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	return res, nil
}

func (s *ReservationStore) isFreeLocked(resourceID uuid.UUID, interval booking.Interval) bool {
	for _, res := range s.reservations {
		if res.ResourceID() == resourceID && res.Blocks(interval) {
			return false
		}
	}
	return true
}
