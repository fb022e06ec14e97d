package benford

import (
	"math"
	"sort"
)

// Distribution maps a digit ("1".."9") to its probability.
type Distribution map[string]float64

// standardBenford holds the rounded constants most published tables use.
var standardBenford = [9]float64{0.301, 0.176, 0.125, 0.097, 0.079, 0.067, 0.058, 0.051, 0.046}

// digitKeys are the digits in ascending order.
var digitKeys = [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Digits returns "1" through "9" in order.
func Digits() []string {
	return append([]string(nil), digitKeys[:]...)
}

// StandardBenford returns the reference distribution used by default:
//
//	1: 0.301  2: 0.176  3: 0.125  4: 0.097  5: 0.079
//	6: 0.067  7: 0.058  8: 0.051  9: 0.046
//
// A new map is returned on every call, so callers may modify it.
func StandardBenford() Distribution {
	d := make(Distribution, len(digitKeys))
	for i, key := range digitKeys {
		d[key] = standardBenford[i]
	}
	return d
}

// ExactBenford returns P(d) = log10(1 + 1/d) without rounding.
func ExactBenford() Distribution {
	d := make(Distribution, len(digitKeys))
	for i, key := range digitKeys {
		d[key] = math.Log10(1 + 1/float64(i+1))
	}
	return d
}

// Clone returns an independent copy of d.
func (d Distribution) Clone() Distribution {
	if d == nil {
		return nil
	}
	c := make(Distribution, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// Sum adds up all probabilities. A reference override is not required to
// sum to 1; this is only informational.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, key := range sortedKeys(d) {
		sum += d[key]
	}
	return sum
}

// digitKey converts a leading digit (1-9) to its map key.
func digitKey(digit int) string {
	return digitKeys[digit-1]
}

// sortedKeys returns the keys of d in ascending order.
func sortedKeys(d Distribution) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
