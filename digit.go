package benford

import (
	"math"
	"strconv"
)

// maxPow is the largest n for which math.Pow10(n) does not overflow.
const maxPow = 308

// smallestNormal is the smallest positive normal float64. Below it
// math.Log10 can be off by several decades.
const smallestNormal = 0x1p-1022

// boundaryTolerance is how close the scaled value may come to a whole
// number before the decimal form of x decides the digit.
const boundaryTolerance = 1e-9

// LeadingDigit returns the leading significant digit (1-9) of x.
//
// Finiteness is checked before sign:
//   - NaN, +Inf, -Inf: ErrNotFinite
//   - x ≤ 0:           ErrNonPositive
//
// The digit is found with logarithms:
//
//	e     = floor(log10(x))
//	digit = floor(x / 10^e)
//
// For x < 1 the division becomes a multiplication by 10^-e, so 0.5 yields 5.
//
// Two floating-point effects are corrected:
//
//   - math.Log10 is not exact at powers of ten (log10(1000) evaluates to
//     2.9999999999999996, which scales 1000 to 10). A scaled value outside
//     [1, 10) moves the exponent by one.
//   - Scaling rounds. 0.0003 scales to 2.9999999999999996. When the scaled
//     value lies within boundaryTolerance of a whole number, the shortest
//     decimal form of x decides, so 0.0003 yields 3 while
//     999.9999999999999 still yields 9.
//
// Subnormals (x < 2.2250738585072014e-308) skip the logarithm: they carry
// too few significant bits for scaling, so their decimal form decides and
// 5e-324 yields 5.
//
// Anything still outside [1, 10) is reported as ErrInvalidDigit.
func LeadingDigit(x float64) (int, error) {
	return leadingDigit(x, -1)
}

// leadingDigit is LeadingDigit with the dataset index carried into errors.
func leadingDigit(x float64, index int) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &ValueError{Index: index, Value: x, Err: ErrNotFinite}
	}
	if x <= 0 {
		return 0, &ValueError{Index: index, Value: x, Err: ErrNonPositive}
	}

	if x < smallestNormal {
		return int(decimalLead(x)), nil
	}

	exp := int(math.Floor(math.Log10(x)))
	scaled := shift(x, exp)

	switch {
	case scaled >= 10:
		exp++
		scaled = shift(x, exp)
	case scaled < 1:
		exp--
		scaled = shift(x, exp)
	}

	if math.Abs(scaled-math.Round(scaled)) < boundaryTolerance {
		scaled = decimalLead(x)
	}

	// Compared as float first: converting Inf or NaN to int is undefined.
	if !(scaled >= 1 && scaled < 10) {
		return 0, &ValueError{Index: index, Value: x, Err: ErrInvalidDigit}
	}

	return int(scaled), nil
}

// shift returns x / 10^exp. Negative exponents multiply by 10^-exp.
func shift(x float64, exp int) float64 {
	if exp >= 0 {
		return x / math.Pow10(exp)
	}

	// 10^-exp may overflow near the bottom of the normal range.
	for exp < -maxPow {
		x *= math.Pow10(maxPow)
		exp += maxPow
	}
	return x * math.Pow10(-exp)
}

// decimalLead returns the first digit of the shortest decimal form of x,
// which for positive finite x is always 1-9.
func decimalLead(x float64) float64 {
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], x, 'e', -1, 64)
	return float64(s[0] - '0')
}
