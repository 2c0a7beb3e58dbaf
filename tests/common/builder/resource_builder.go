//go:build unit || e2e

package builder

import (
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	BranchID   *uuid.UUID
	Type       string
	Status     string
	IsActive   bool
	Attributes map[string]string
}

func NewResourceBuilder() *ResourceBuilder {
	branchID := uuid.New()
	return &ResourceBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		BranchID:   &branchID,
		Type:       "court",
		Status:     "available",
		IsActive:   true,
		Attributes: map[string]string{"surface": "hard"},
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	rtype, err := resource.NewType(b.Type)
	if err != nil {
		return nil, err
	}

	status, err := resource.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	return resource.NewResource(b.ID, b.BusinessID, b.BranchID, rtype, status, b.IsActive, b.Attributes)
}

func (b *ResourceBuilder) BuildReadModel() *queries.ResourceView {
	return &queries.ResourceView{
		ID:         b.ID,
		BusinessID: b.BusinessID,
		BranchID:   b.BranchID,
		Type:       b.Type,
		Status:     b.Status,
		IsActive:   b.IsActive,
		Attributes: b.Attributes,
	}
}

// Fluent builder methods
func (b *ResourceBuilder) WithType(t string) *ResourceBuilder {
	b.Type = t
	return b
}

func (b *ResourceBuilder) WithStatus(s string) *ResourceBuilder {
	b.Status = s
	return b
}

func (b *ResourceBuilder) WithBusinessID(id uuid.UUID) *ResourceBuilder {
	b.BusinessID = id
	return b
}

func (b *ResourceBuilder) WithoutBranch() *ResourceBuilder {
	b.BranchID = nil
	return b
}

func (b *ResourceBuilder) AsInactive() *ResourceBuilder {
	b.IsActive = false
	return b
}
