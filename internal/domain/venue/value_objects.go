package venue

import (
	"errors"
	"math"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount of the single catalog currency held in cents.
type Money struct {
	cents int64
}

func NewMoney(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
