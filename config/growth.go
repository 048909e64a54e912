// File: config/growth.go
// License: Apache-2.0
//
// Growth policies. A policy is a pure function from current capacity to
// the number of slots to add; it is consulted only when a growable pool
// is exhausted.

package config

// Growth decides how many slots a growable pool adds when exhausted.
type Growth interface {
	// Amount returns the number of slots to add given the current
	// capacity. Zero or a negative value means the pool cannot grow.
	Amount(current int) int
}

type growthNone struct{}

func (growthNone) Amount(int) int { return 0 }

// GrowthNone disables growth; exhaustion is terminal.
var GrowthNone Growth = growthNone{}

// Linear grows the pool by a fixed number of slots each time.
type Linear struct {
	Step int
}

func (g Linear) Amount(int) int { return g.Step }

// Exponential multiplies the current capacity by Factor. The amount is
// the difference, never less than one slot so growth always makes
// progress.
type Exponential struct {
	Factor float64
}

func (g Exponential) Amount(current int) int {
	next := int(float64(current) * g.Factor)
	if amount := next - current; amount > 0 {
		return amount
	}
	return 1
}

// GrowthFunc adapts a plain function into a Growth policy.
type GrowthFunc func(current int) int

func (f GrowthFunc) Amount(current int) int { return f(current) }
