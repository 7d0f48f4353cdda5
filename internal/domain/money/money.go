package money

import (
	"fmt"
	"math"
)

// Cents is an amount of US currency in its smallest unit.
type Cents int64

func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

func (c Cents) Int64() int64 {
	return int64(c)
}

// PercentOf rounds half away from zero.
func (c Cents) PercentOf(percent float64) Cents {
	return Cents(math.Round(float64(c) * percent / 100))
}

// Share returns round(c * percent / 100) using integer arithmetic only.
func (c Cents) Share(percent int) Cents {
	if c < 0 {
		return -(-c).Share(percent)
	}
	return (c*Cents(percent) + 50) / 100
}

func (c Cents) Clamp(lo, hi Cents) Cents {
	if c < lo {
		return lo
	}
	if c > hi {
		return hi
	}
	return c
}

// String formats as "$85.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
