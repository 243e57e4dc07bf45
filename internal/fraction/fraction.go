// Package fraction computes exact reduced fractions for the n-gram
// probability tables the model writer emits.
//
// Probabilities are stored on disk as "num/den" strings rather than
// floating point so the files are reproducible byte-for-byte across
// platforms and Go versions: count and total are both exact integers, so
// New reduces them with plain integer GCD rather than routing through any
// floating-point or fixed-precision intermediate that could round
// differently on different architectures.
package fraction

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fraction is a reduced, positive rational number with 0 < Num <= Den.
type Fraction struct {
	Num uint64
	Den uint64
}

// String renders the fraction as "num/den", the exact format used as a key
// in the on-disk model files.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Float64 returns the fraction as a floating point approximation, used at
// inference time after a model file has been decoded.
func (f Fraction) Float64() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

// New computes count/total, reduced to lowest terms via integer GCD.
// Panics if total is zero or count is not in (0, total] — both are
// programmer errors at the call sites in this module, which only ever
// call New with a count drawn from the same tally total was summed from.
func New(count, total uint64) Fraction {
	if total == 0 {
		panic("fraction: total must be positive")
	}
	if count == 0 || count > total {
		panic("fraction: count must be in (0, total]")
	}
	g := gcd(count, total)
	return Fraction{Num: count / g, Den: total / g}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RelativeFrequency returns count/total as an arbitrary-precision decimal,
// used wherever a human-readable or report-grade frequency is needed (the
// training writer's evaluation report) without accumulating the rounding
// error repeated float64 division would introduce across millions of
// corpus tokens.
func RelativeFrequency(count, total uint64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).DivRound(decimal.NewFromInt(int64(total)), 12)
}
