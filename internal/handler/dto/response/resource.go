package response

import (
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID         uuid.UUID         `json:"id"`
	BusinessID uuid.UUID         `json:"businessId"`
	BranchID   *uuid.UUID        `json:"branchId,omitempty"`
	Type       string            `json:"type"`
	Status     string            `json:"status"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func FromResourceEntity(r *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:         r.ID(),
		BusinessID: r.BusinessID(),
		BranchID:   r.BranchID(),
		Type:       r.Type().String(),
		Status:     r.Status().String(),
		Attributes: r.Attributes(),
	}
}

func FromResourceView(rm *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:         rm.ID,
		BusinessID: rm.BusinessID,
		BranchID:   rm.BranchID,
		Type:       rm.Type,
		Status:     rm.Status,
		Attributes: rm.Attributes,
	}
}
