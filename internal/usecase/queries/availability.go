package queries

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// ResourceReadStore resolves the candidate set: active resources of the
// requested type and scope, excluding maintenance and out_of_order, in
// stable id order.
type ResourceReadStore interface {
	ListCandidates(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) ([]*ResourceView, error)
}

// ReservationReadStore narrows resource ids to those free for an interval.
type ReservationReadStore interface {
	FindAvailable(ctx context.Context, resourceIDs []uuid.UUID, interval booking.Interval) ([]uuid.UUID, error)
}

type AvailabilityQueries interface {
	ListFreeResources(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type, interval booking.Interval) ([]*ResourceView, error)
}

type availabilityQueriesImpl struct {
	resources    ResourceReadStore
	reservations ReservationReadStore
}

func NewAvailabilityQueries(resources ResourceReadStore, reservations ReservationReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		resources:    resources,
		reservations: reservations,
	}
}

func (q *availabilityQueriesImpl) ListFreeResources(
	ctx context.Context,
	businessID uuid.UUID,
	branchID *uuid.UUID,
	rtype resource.Type,
	interval booking.Interval,
) ([]*ResourceView, error) {
	candidates, err := q.resources.ListCandidates(ctx, businessID, branchID, rtype)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []*ResourceView{}, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	freeIDs, err := q.reservations.FindAvailable(ctx, ids, interval)
	if err != nil {
		return nil, err
	}

	free := make(map[uuid.UUID]struct{}, len(freeIDs))
	for _, id := range freeIDs {
		free[id] = struct{}{}
	}

	// Preserve candidate order so results stay reproducible
	result := make([]*ResourceView, 0, len(freeIDs))
	for _, c := range candidates {
		if _, ok := free[c.ID]; ok {
			result = append(result, c)
		}
	}

	return result, nil
}
