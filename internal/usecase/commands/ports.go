package commands

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/entitlement"
	"booking-engine/internal/domain/payment"
	"booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type ServicePricingSnapshot struct {
	ServiceID uuid.UUID
	Price     payment.Money
	Policy    payment.Policy
}

// ResourceReads resolves candidate resources for a booking scope. The store
// filters to active, non-maintenance, non-out_of_order records and returns
// them in stable id order.
type ResourceReads interface {
	ListCandidates(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) ([]*resource.Resource, error)
}

// ReservationRepository owns reservation state. Commit must re-validate
// freeness atomically with the insert so two racing commits for overlapping
// intervals on the same resource yield exactly one success.
type ReservationRepository interface {
	IsFree(ctx context.Context, resourceID uuid.UUID, interval booking.Interval) (bool, error)
	FindAvailable(ctx context.Context, resourceIDs []uuid.UUID, interval booking.Interval) ([]uuid.UUID, error)
	Commit(ctx context.Context, resourceID, appointmentID uuid.UUID, interval booking.Interval) (*booking.Reservation, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

type EntitlementRepository interface {
	// FindForService returns entitlements already scoped to the customer and
	// service (direct grants plus package/membership coverage).
	FindForService(ctx context.Context, customerID, serviceID uuid.UUID) ([]*entitlement.Entitlement, error)
	// Decrement consumes one unit of a limited entitlement. Unlimited
	// entitlements are left untouched.
	Decrement(ctx context.Context, entitlementID uuid.UUID) error
}

type PricingReads interface {
	FindByService(ctx context.Context, serviceID uuid.UUID) (*ServicePricingSnapshot, error)
}

// AvailabilityCache invalidates cached candidate lists after a commit or
// cancellation changes what is free. Best effort; the cache TTL bounds
// staleness when invalidation fails.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) error
}
