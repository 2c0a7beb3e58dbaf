package entitlement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RemainingUnlimited marks an entitlement without a usage counter.
const RemainingUnlimited int32 = -1

var (
	ErrNoRemainingUsage = errors.New("no remaining usage")
)

// Entitlement is a standing permission for a customer to receive a specific
// service without paying at booking time.
type Entitlement struct {
	id             uuid.UUID
	customerID     uuid.UUID
	source         Source
	expiresAt      *time.Time // nil: never expires (typical for direct grants)
	remainingUsage int32
}

func NewEntitlement(id, customerID uuid.UUID, source Source, expiresAt *time.Time, remainingUsage int32) (*Entitlement, error) {
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}

	return &Entitlement{
		id:             id,
		customerID:     customerID,
		source:         source,
		expiresAt:      expiresAt,
		remainingUsage: remainingUsage,
	}, nil
}

// IsValid reports whether the entitlement covers a booking made at now:
// not expired, and remaining usage unlimited or positive.
func (e *Entitlement) IsValid(now time.Time) bool {
	if e.expiresAt != nil && now.After(*e.expiresAt) {
		return false
	}
	return e.remainingUsage == RemainingUnlimited || e.remainingUsage > 0
}

func (e *Entitlement) HasUnlimitedUsage() bool {
	return e.remainingUsage == RemainingUnlimited
}

// ConsumeOne decrements the usage counter. Unlimited entitlements are
// untouched. Consumption happens only after a booking fully commits.
func (e *Entitlement) ConsumeOne() error {
	if e.remainingUsage == RemainingUnlimited {
		return nil
	}
	if e.remainingUsage <= 0 {
		return ErrNoRemainingUsage
	}
	e.remainingUsage--
	return nil
}

func (e *Entitlement) ID() uuid.UUID         { return e.id }
func (e *Entitlement) CustomerID() uuid.UUID { return e.customerID }
func (e *Entitlement) Source() Source        { return e.source }
func (e *Entitlement) ExpiresAt() *time.Time { return e.expiresAt }
func (e *Entitlement) RemainingUsage() int32 { return e.remainingUsage }
