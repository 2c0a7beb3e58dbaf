package entitlement

import (
	"sort"
	"time"
)

// RightsResult is the outcome of resolving a customer's usage rights for a
// service. Resolution never mutates state; consumption is the committing
// caller's job.
type RightsResult struct {
	HasRights   bool
	Source      Source
	Entitlement *Entitlement
}

func NoRights() RightsResult {
	return RightsResult{}
}

// Resolve picks the entitlement to consume out of the candidates already
// scoped to one (customer, service) pair. First match by source precedence
// wins; within a source, the soonest-expiring entitlement is used first so
// the one closest to waste gets consumed. Entitlements without expiry sort
// last.
func Resolve(candidates []*Entitlement, now time.Time) RightsResult {
	valid := make([]*Entitlement, 0, len(candidates))
	for _, e := range candidates {
		if e.IsValid(now) {
			valid = append(valid, e)
		}
	}
	if len(valid) == 0 {
		return NoRights()
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].source.rank() != valid[j].source.rank() {
			return valid[i].source.rank() < valid[j].source.rank()
		}
		return expiresBefore(valid[i], valid[j])
	})

	chosen := valid[0]
	return RightsResult{
		HasRights:   true,
		Source:      chosen.source,
		Entitlement: chosen,
	}
}

func expiresBefore(a, b *Entitlement) bool {
	switch {
	case a.expiresAt == nil:
		return false
	case b.expiresAt == nil:
		return true
	default:
		return a.expiresAt.Before(*b.expiresAt)
	}
}
