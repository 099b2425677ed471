package billing

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is a PHP amount held as an integer count of centavos. All ledger
// arithmetic stays in integers; the only rounding point in the whole system
// is PercentOf, used once per reservation to fix the advance payment.
type Money struct {
	centavos int64
}

func NewMoney(centavos int64) Money {
	return Money{centavos: centavos}
}

func NewMoneyFromInt(centavos int64) (Money, error) {
	if centavos < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{centavos: centavos}, nil
}

// Pesos builds a Money from a whole-peso amount.
func Pesos(pesos int64) Money {
	return Money{centavos: pesos * 100}
}

func (m Money) Centavos() int64 {
	return m.centavos
}

func (m Money) Add(other Money) Money {
	return Money{centavos: m.centavos + other.centavos}
}

func (m Money) Sub(other Money) Money {
	return Money{centavos: m.centavos - other.centavos}
}

// MulQty multiplies a unit rate by a line quantity. Exact, no rounding.
func (m Money) MulQty(qty int) Money {
	return Money{centavos: m.centavos * int64(qty)}
}

func (m Money) IsNegative() bool {
	return m.centavos < 0
}

func (m Money) IsZero() bool {
	return m.centavos == 0
}

// ClampNonNegative is for display surfaces that must never show a negative
// balance. The signed value stays on the aggregate for audit.
func (m Money) ClampNonNegative() Money {
	if m.centavos < 0 {
		return Money{}
	}
	return m
}

// PercentOf takes a whole-percent fraction of a non-negative amount,
// rounding to the nearest centavo with ties rounding up.
func PercentOf(amount Money, percent int) Money {
	raw := amount.centavos * int64(percent)
	q := raw / 100
	if rem := raw % 100; rem*2 >= 100 {
		q++
	}
	return Money{centavos: q}
}
