package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/gomal"
)

// Frac is a rational number: a signed numerator over a positive denominator.
// Arithmetic keeps intermediate results unreduced as long as magnitudes stay
// small, reduces on demand when they threaten to overflow, and reduces
// unconditionally at the end of a multi-operand fold. (/ 1 3) round-trips
// losslessly; there are no floats in the language.
type Frac struct {
	num int64
	den int64
}

// simplifyThreshold is ⌊√(2⁶³−1)⌋: beyond it a single multiplication of two
// such magnitudes may overflow, so operands get reduced first.
const simplifyThreshold = 3037000499

// NewFrac constructs a rational. A zero denominator is an error; a negative
// one is normalized onto the numerator.
func NewFrac(num, den int64) (Frac, error) {
	if den == 0 {
		return Frac{}, gomal.Errorf("denominator is zero")
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Frac{num: num, den: den}, nil
}

// FromInt wraps an integer as a rational with denominator 1.
func FromInt(n int64) Frac {
	return Frac{num: n, den: 1}
}

// Num returns the numerator.
func (f Frac) Num() int64 {
	return f.num
}

// Den returns the denominator. Always positive.
func (f Frac) Den() int64 {
	if f.den == 0 { // zero value of Frac counts as 0/1
		return 1
	}
	return f.den
}

// IsZero is true if the numerator is zero.
func (f Frac) IsZero() bool {
	return f.num == 0
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Reduce brings the rational into lowest terms.
func (f Frac) Reduce() Frac {
	d := gcd(f.num, f.Den())
	return Frac{num: f.num / d, den: f.Den() / d}
}

// guard reduces only when a magnitude exceeds the overflow threshold, keeping
// the cheap unreduced representation for small intermediate results.
func (f Frac) guard() Frac {
	if f.num > simplifyThreshold || f.num < -simplifyThreshold || f.Den() > simplifyThreshold {
		return f.Reduce()
	}
	return f
}

// Add returns f+g.
func (f Frac) Add(g Frac) Frac {
	f, g = f.guard(), g.guard()
	return Frac{num: f.num*g.Den() + g.num*f.Den(), den: f.Den() * g.Den()}.guard()
}

// Sub returns f−g.
func (f Frac) Sub(g Frac) Frac {
	f, g = f.guard(), g.guard()
	return Frac{num: f.num*g.Den() - g.num*f.Den(), den: f.Den() * g.Den()}.guard()
}

// Mul returns f·g.
func (f Frac) Mul(g Frac) Frac {
	f, g = f.guard(), g.guard()
	return Frac{num: f.num * g.num, den: f.Den() * g.Den()}.guard()
}

// Div returns f/g. The caller must have established g ≠ 0.
func (f Frac) Div(g Frac) Frac {
	f, g = f.guard(), g.guard()
	num, den := f.num*g.Den(), f.Den()*g.num
	if den < 0 {
		num, den = -num, -den
	}
	return Frac{num: num, den: den}.guard()
}

// Cmp compares f and g, returning −1, 0 or +1.
func (f Frac) Cmp(g Frac) int {
	f, g = f.Reduce(), g.Reduce()
	left, right := f.num*g.Den(), g.num*f.Den()
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

// Equals compares by value, not by representation: 4/6 equals 2/3.
func (f Frac) Equals(g Frac) bool {
	return f.Reduce() == g.Reduce()
}

// Floor rounds toward −∞, also for negative rationals.
func (f Frac) Floor() int64 {
	q := f.num / f.Den()
	if f.num%f.Den() != 0 && f.num < 0 {
		q--
	}
	return q
}

// String prints an integer-valued rational as the numerator alone, any other
// as num/den.
func (f Frac) String() string {
	if f.Den() == 1 {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}
