package resource

import (
	"github.com/google/uuid"
)

// Resource is a concrete bookable unit (a court, an equipment item, a room),
// distinct from the abstract service being sold. Busyness is a function of
// reservations, not of resource status; only maintenance, out_of_order and
// isActive=false exclude a resource from candidacy outright.
type Resource struct {
	id         uuid.UUID
	businessID uuid.UUID
	branchID   *uuid.UUID
	rtype      Type
	status     Status
	isActive   bool
	attributes map[string]string
}

func NewResource(id, businessID uuid.UUID, branchID *uuid.UUID, rtype Type, status Status, isActive bool, attributes map[string]string) (*Resource, error) {
	if !rtype.IsValid() {
		return nil, ErrInvalidType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Resource{
		id:         id,
		businessID: businessID,
		branchID:   branchID,
		rtype:      rtype,
		status:     status,
		isActive:   isActive,
		attributes: attributes,
	}, nil
}

// IsCandidate reports whether the resource may appear in an availability
// candidate set at all, regardless of time window.
func (r *Resource) IsCandidate() bool {
	if !r.isActive {
		return false
	}
	return r.status != StatusMaintenance && r.status != StatusOutOfOrder
}

func (r *Resource) ID() uuid.UUID         { return r.id }
func (r *Resource) BusinessID() uuid.UUID { return r.businessID }
func (r *Resource) BranchID() *uuid.UUID  { return r.branchID }
func (r *Resource) Type() Type            { return r.rtype }
func (r *Resource) Status() Status        { return r.status }
func (r *Resource) IsActive() bool        { return r.isActive }

func (r *Resource) Attribute(key string) (string, bool) {
	v, ok := r.attributes[key]
	return v, ok
}

func (r *Resource) Attributes() map[string]string {
	return r.attributes
}
