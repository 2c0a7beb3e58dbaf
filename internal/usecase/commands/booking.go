package commands

import (
	"context"
	"errors"
	"log/slog"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/entitlement"
	"booking-engine/internal/domain/payment"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Stages of a single booking attempt, logged so a stuck or failed attempt
// can be located in the flow.
type stage string

const (
	stageStarted             stage = "STARTED"
	stageRightsResolved      stage = "RIGHTS_RESOLVED"
	stageAvailabilityChecked stage = "AVAILABILITY_CHECKED"
	stagePolicyResolved      stage = "POLICY_RESOLVED"
	stageIntentReady         stage = "INTENT_READY"
	stageCommitting          stage = "COMMITTING"
	stageCommitted           stage = "COMMITTED"
	stageCommitFailed        stage = "COMMIT_FAILED"
	stageNoAvailability      stage = "NO_AVAILABILITY"
)

type PrepareBookingParams struct {
	CustomerID   uuid.UUID
	ServiceID    uuid.UUID
	BusinessID   uuid.UUID
	BranchID     *uuid.UUID
	ResourceType *resource.Type // nil: the service needs no physical resource
	Interval     booking.Interval
}

// BookingIntent is ephemeral: consumed immediately by the caller to show a
// payment screen or proceed straight to commit. Nothing is persisted until
// CommitBooking.
type BookingIntent struct {
	CustomerID         uuid.UUID
	ServiceID          uuid.UUID
	BusinessID         uuid.UUID
	BranchID           *uuid.UUID
	ResourceType       *resource.Type
	Interval           booking.Interval
	Rights             entitlement.RightsResult
	RightsDegraded     bool
	CandidateResources []*resource.Resource
	AmountDueNow       payment.Money
	PolicyApplied      payment.Policy
}

type CommitResult struct {
	Reservations        []*booking.Reservation
	EntitlementConsumed *uuid.UUID
}

type BookingCommands interface {
	PrepareBooking(ctx context.Context, params PrepareBookingParams) (*BookingIntent, error)
	CommitBooking(ctx context.Context, intent *BookingIntent, chosenResourceIDs []uuid.UUID, appointmentID uuid.UUID) (*CommitResult, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) error
}

type bookingCommandsImpl struct {
	resourceReads   ResourceReads
	reservationRepo ReservationRepository
	entitlementRepo EntitlementRepository
	pricingReads    PricingReads
	cache           AvailabilityCache
	metrics         *metrics.BookingMetrics
	clock           clock.Clock
}

func NewBookingCommands(
	resourceReads ResourceReads,
	reservationRepo ReservationRepository,
	entitlementRepo EntitlementRepository,
	pricingReads PricingReads,
	cache AvailabilityCache,
	bookingMetrics *metrics.BookingMetrics,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		resourceReads:   resourceReads,
		reservationRepo: reservationRepo,
		entitlementRepo: entitlementRepo,
		pricingReads:    pricingReads,
		cache:           cache,
		metrics:         bookingMetrics,
		clock:           clock,
	}
}

func (b *bookingCommandsImpl) PrepareBooking(ctx context.Context, params PrepareBookingParams) (*BookingIntent, error) {
	logAttrs := []any{
		slog.String("customer_id", params.CustomerID.String()),
		slog.String("service_id", params.ServiceID.String()),
		slog.String("interval", params.Interval.ToTstzrange()),
	}
	slog.Debug("booking attempt", append([]any{slog.String("stage", string(stageStarted))}, logAttrs...)...)

	rights, degraded := b.resolveRights(ctx, params.CustomerID, params.ServiceID, logAttrs)
	slog.Debug("booking attempt", append([]any{slog.String("stage", string(stageRightsResolved)), slog.Bool("has_rights", rights.HasRights)}, logAttrs...)...)

	candidates, err := b.resolveAvailability(ctx, params)
	if err != nil {
		if errors.Is(err, errs.ErrNoAvailability) {
			slog.Info("booking attempt ended", append([]any{slog.String("stage", string(stageNoAvailability))}, logAttrs...)...)
			b.metrics.ObservePrepare(metrics.OutcomeNoAvailability)
		} else {
			b.metrics.ObservePrepare(metrics.OutcomeFailed)
		}
		return nil, err
	}
	slog.Debug("booking attempt", append([]any{slog.String("stage", string(stageAvailabilityChecked)), slog.Int("free_resources", len(candidates))}, logAttrs...)...)

	pricing, err := b.pricingReads.FindByService(ctx, params.ServiceID)
	if err != nil {
		b.metrics.ObservePrepare(metrics.OutcomeFailed)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPolicyNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	amountDue, err := payment.AmountDue(pricing.Policy, pricing.Price, rights)
	if err != nil {
		b.metrics.ObservePrepare(metrics.OutcomeFailed)
		return nil, err
	}
	slog.Debug("booking attempt", append([]any{slog.String("stage", string(stagePolicyResolved)), slog.Int64("amount_due", amountDue.Amount())}, logAttrs...)...)

	b.metrics.ObservePrepare(metrics.OutcomePrepared)
	slog.Debug("booking attempt", append([]any{slog.String("stage", string(stageIntentReady))}, logAttrs...)...)

	return &BookingIntent{
		CustomerID:         params.CustomerID,
		ServiceID:          params.ServiceID,
		BusinessID:         params.BusinessID,
		BranchID:           params.BranchID,
		ResourceType:       params.ResourceType,
		Interval:           params.Interval,
		Rights:             rights,
		RightsDegraded:     degraded,
		CandidateResources: candidates,
		AmountDueNow:       amountDue,
		PolicyApplied:      pricing.Policy,
	}, nil
}

// resolveRights degrades a failed entitlement lookup to "no rights" so a
// backend hiccup never blocks paid bookings, but the failure is logged and
// flagged on the intent.
func (b *bookingCommandsImpl) resolveRights(ctx context.Context, customerID, serviceID uuid.UUID, logAttrs []any) (entitlement.RightsResult, bool) {
	candidates, err := b.entitlementRepo.FindForService(ctx, customerID, serviceID)
	if err != nil {
		err = errs.Mark(err, errs.ErrRightsLookup)
		slog.Error("entitlement lookup failed, treating customer as rights-less",
			append([]any{slog.String("error", err.Error())}, logAttrs...)...)
		return entitlement.NoRights(), true
	}

	return entitlement.Resolve(candidates, b.clock.Now()), false
}

func (b *bookingCommandsImpl) resolveAvailability(ctx context.Context, params PrepareBookingParams) ([]*resource.Resource, error) {
	if params.ResourceType == nil {
		return []*resource.Resource{}, nil
	}

	candidates, err := b.resourceReads.ListCandidates(ctx, params.BusinessID, params.BranchID, *params.ResourceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID()
	}

	freeIDs, err := b.reservationRepo.FindAvailable(ctx, ids, params.Interval)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(freeIDs) == 0 {
		return nil, errs.ErrNoAvailability
	}

	free := make(map[uuid.UUID]struct{}, len(freeIDs))
	for _, id := range freeIDs {
		free[id] = struct{}{}
	}

	result := make([]*resource.Resource, 0, len(freeIDs))
	for _, c := range candidates {
		if _, ok := free[c.ID()]; ok {
			result = append(result, c)
		}
	}

	return result, nil
}

// CommitBooking claims the chosen resources in caller order. The operation is
// all-or-nothing: a conflict on any resource tombstones the reservations
// already made in this call before the error is returned. The consumed
// entitlement is decremented only after every commit succeeded, so a limited
// package credit is never spent on a booking that failed to secure a
// resource.
func (b *bookingCommandsImpl) CommitBooking(
	ctx context.Context,
	intent *BookingIntent,
	chosenResourceIDs []uuid.UUID,
	appointmentID uuid.UUID,
) (*CommitResult, error) {
	logAttrs := []any{
		slog.String("appointment_id", appointmentID.String()),
		slog.String("customer_id", intent.CustomerID.String()),
	}
	slog.Debug("booking commit", append([]any{slog.String("stage", string(stageCommitting))}, logAttrs...)...)

	if err := b.validateChosen(intent, chosenResourceIDs); err != nil {
		b.metrics.ObserveCommit(metrics.OutcomeFailed)
		return nil, err
	}

	committed := make([]*booking.Reservation, 0, len(chosenResourceIDs))
	for _, resourceID := range chosenResourceIDs {
		res, err := b.reservationRepo.Commit(ctx, resourceID, appointmentID, intent.Interval)
		if err != nil {
			b.rollback(ctx, committed, logAttrs)
			slog.Warn("booking commit lost the race for a resource",
				append([]any{
					slog.String("stage", string(stageCommitFailed)),
					slog.String("resource_id", resourceID.String()),
				}, logAttrs...)...)
			if infra.IsKind(err, infra.KindConflict) {
				b.metrics.ObserveCommit(metrics.OutcomeConflict)
				return nil, errs.Mark(err, errs.ErrResourceConflict)
			}
			b.metrics.ObserveCommit(metrics.OutcomeFailed)
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		committed = append(committed, res)
	}

	result := &CommitResult{Reservations: committed}

	if intent.Rights.HasRights {
		result.EntitlementConsumed = b.consumeEntitlement(ctx, intent, logAttrs)
		b.metrics.ObserveRightsBypass()
	}

	b.invalidateCache(ctx, intent, logAttrs)

	b.metrics.ObserveCommit(metrics.OutcomeCommitted)
	slog.Info("booking committed",
		append([]any{
			slog.String("stage", string(stageCommitted)),
			slog.Int("reservations", len(committed)),
		}, logAttrs...)...)

	return result, nil
}

func (b *bookingCommandsImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	if err := b.reservationRepo.Cancel(ctx, reservationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b.metrics.ObserveCancellation()
	return nil
}

func (b *bookingCommandsImpl) validateChosen(intent *BookingIntent, chosenResourceIDs []uuid.UUID) error {
	if intent.ResourceType == nil {
		if len(chosenResourceIDs) > 0 {
			return errs.New("service does not allocate physical resources")
		}
		return nil
	}
	if len(chosenResourceIDs) == 0 {
		return errs.New("no resources chosen")
	}

	candidates := make(map[uuid.UUID]struct{}, len(intent.CandidateResources))
	for _, c := range intent.CandidateResources {
		candidates[c.ID()] = struct{}{}
	}
	for _, id := range chosenResourceIDs {
		if _, ok := candidates[id]; !ok {
			return errs.ErrResourceNotFound
		}
	}
	return nil
}

// rollback tombstones reservations committed earlier in the same call, in
// reverse order, so a failed multi-resource booking leaves nothing behind.
func (b *bookingCommandsImpl) rollback(ctx context.Context, committed []*booking.Reservation, logAttrs []any) {
	for i := len(committed) - 1; i >= 0; i-- {
		if err := b.reservationRepo.Cancel(ctx, committed[i].ID()); err != nil {
			slog.Error("failed to roll back reservation",
				append([]any{
					slog.String("reservation_id", committed[i].ID().String()),
					slog.String("error", err.Error()),
				}, logAttrs...)...)
		}
	}
}

// consumeEntitlement runs after the full commit succeeded. A decrement
// failure is logged but does not undo the booking; the credit discrepancy is
// reconciled by business tooling.
func (b *bookingCommandsImpl) consumeEntitlement(ctx context.Context, intent *BookingIntent, logAttrs []any) *uuid.UUID {
	ent := intent.Rights.Entitlement
	if ent == nil {
		return nil
	}

	if !ent.HasUnlimitedUsage() {
		if err := b.entitlementRepo.Decrement(ctx, ent.ID()); err != nil {
			slog.Error("failed to decrement entitlement after commit",
				append([]any{
					slog.String("entitlement_id", ent.ID().String()),
					slog.String("error", err.Error()),
				}, logAttrs...)...)
		}
	}

	id := ent.ID()
	return &id
}

func (b *bookingCommandsImpl) invalidateCache(ctx context.Context, intent *BookingIntent, logAttrs []any) {
	if intent.ResourceType == nil {
		return
	}
	if err := b.cache.Invalidate(ctx, intent.BusinessID, intent.BranchID, *intent.ResourceType); err != nil {
		slog.Warn("failed to invalidate candidate cache",
			append([]any{slog.String("error", err.Error())}, logAttrs...)...)
	}
}
