package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ResourceView struct {
	ID         uuid.UUID         `json:"id"`
	BusinessID uuid.UUID         `json:"business_id"`
	BranchID   *uuid.UUID        `json:"branch_id,omitempty"`
	Type       string            `json:"type"`
	Status     string            `json:"status"`
	IsActive   bool              `json:"is_active"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type EntitlementView struct {
	ID             uuid.UUID  `json:"id"`
	Source         string     `json:"source"`
	ServiceID      *uuid.UUID `json:"service_id,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	RemainingUsage int32      `json:"remaining_usage"`
	IsValid        bool       `json:"is_valid"`
}
