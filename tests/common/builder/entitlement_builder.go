//go:build unit || e2e

package builder

import (
	"time"

	"booking-engine/internal/domain/entitlement"

	"github.com/google/uuid"
)

type EntitlementBuilder struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Source         string
	ExpiresAt      *time.Time
	RemainingUsage int32
}

func NewEntitlementBuilder() *EntitlementBuilder {
	expires := time.Now().Add(30 * 24 * time.Hour)
	return &EntitlementBuilder{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		Source:         "package",
		ExpiresAt:      &expires,
		RemainingUsage: 5,
	}
}

func (b *EntitlementBuilder) With(mutate func(*EntitlementBuilder)) *EntitlementBuilder {
	mutate(b)
	return b
}

func (b *EntitlementBuilder) BuildDomain() (*entitlement.Entitlement, error) {
	source, err := entitlement.NewSource(b.Source)
	if err != nil {
		return nil, err
	}

	return entitlement.NewEntitlement(b.ID, b.CustomerID, source, b.ExpiresAt, b.RemainingUsage)
}

// Fluent builder methods
func (b *EntitlementBuilder) WithSource(source string) *EntitlementBuilder {
	b.Source = source
	return b
}

func (b *EntitlementBuilder) WithCustomerID(id uuid.UUID) *EntitlementBuilder {
	b.CustomerID = id
	return b
}

func (b *EntitlementBuilder) WithExpiry(t time.Time) *EntitlementBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *EntitlementBuilder) WithoutExpiry() *EntitlementBuilder {
	b.ExpiresAt = nil
	return b
}

func (b *EntitlementBuilder) WithRemainingUsage(n int32) *EntitlementBuilder {
	b.RemainingUsage = n
	return b
}

func (b *EntitlementBuilder) AsUnlimited() *EntitlementBuilder {
	b.RemainingUsage = entitlement.RemainingUnlimited
	return b
}

func (b *EntitlementBuilder) AsExpired() *EntitlementBuilder {
	expired := time.Now().Add(-time.Hour)
	b.ExpiresAt = &expired
	return b
}
