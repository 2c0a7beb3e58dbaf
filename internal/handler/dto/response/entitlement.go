package response

import (
	"time"

	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementResponse struct {
	ID             uuid.UUID  `json:"id"`
	Source         string     `json:"source"`
	ServiceID      *uuid.UUID `json:"serviceId,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	RemainingUsage int32      `json:"remainingUsage"`
	IsValid        bool       `json:"isValid"`
}

func FromEntitlementView(rm *queries.EntitlementView) *EntitlementResponse {
	return &EntitlementResponse{
		ID:             rm.ID,
		Source:         rm.Source,
		ServiceID:      rm.ServiceID,
		ExpiresAt:      rm.ExpiresAt,
		RemainingUsage: rm.RemainingUsage,
		IsValid:        rm.IsValid,
	}
}
