package payment

import (
	"booking-engine/internal/domain/entitlement"
	"booking-engine/internal/pkg/errs"
)

type Kind string

const (
	KindFreeBooking         Kind = "free_booking"
	KindDepositRequired     Kind = "deposit_required"
	KindFullPaymentRequired Kind = "full_payment_required"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindFreeBooking, KindDepositRequired, KindFullPaymentRequired:
		return true
	default:
		return false
	}
}

// Policy is the business-configured rule for how much of a service's price
// must be paid at booking time. DepositRate is only meaningful for
// deposit_required and must lie in (0,1].
type Policy struct {
	Kind        Kind
	DepositRate float64
}

func NewPolicy(kind Kind, depositRate float64) (Policy, error) {
	p := Policy{Kind: kind, DepositRate: depositRate}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if !p.Kind.IsValid() {
		return errs.ErrInvalidPolicy
	}
	if p.Kind == KindDepositRequired && (p.DepositRate <= 0 || p.DepositRate > 1) {
		return errs.ErrInvalidPolicy
	}
	return nil
}

// AmountDue computes what must be paid now. A valid usage right supersedes
// the policy entirely.
func AmountDue(policy Policy, servicePrice Money, rights entitlement.RightsResult) (Money, error) {
	if err := policy.Validate(); err != nil {
		return Money{}, err
	}

	if rights.HasRights {
		return Zero(), nil
	}

	switch policy.Kind {
	case KindFreeBooking:
		return Zero(), nil
	case KindDepositRequired:
		return servicePrice.MulRate(policy.DepositRate), nil
	case KindFullPaymentRequired:
		return servicePrice, nil
	default:
		return Money{}, errs.ErrInvalidPolicy
	}
}
