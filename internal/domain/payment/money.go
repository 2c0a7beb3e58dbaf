package payment

import (
	"errors"
	"math"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in the currency's minor unit (e.g. cents, yen).
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// MulRate scales the amount by rate, rounding half-up to the minor unit.
func (m Money) MulRate(rate float64) Money {
	scaled := float64(m.amount) * rate
	return Money{amount: int64(math.Floor(scaled + 0.5))}
}
