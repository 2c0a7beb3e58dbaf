package queries

import (
	"context"

	"booking-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type EntitlementReadStore interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*EntitlementView, error)
}

type EntitlementQueries interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*EntitlementView, error)
}

type entitlementQueriesImpl struct {
	store EntitlementReadStore
	clock clock.Clock
}

func NewEntitlementQueries(store EntitlementReadStore, clock clock.Clock) EntitlementQueries {
	return &entitlementQueriesImpl{
		store: store,
		clock: clock,
	}
}

func (q *entitlementQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*EntitlementView, error) {
	views, err := q.store.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, v := range views {
		expired := v.ExpiresAt != nil && now.After(*v.ExpiresAt)
		depleted := v.RemainingUsage == 0
		v.IsValid = !expired && !depleted
	}

	return views, nil
}
