package benford

import (
	"math"
	"math/rand"
)

// Range of synthetic samples.
const (
	SampleMin = 1.0
	SampleMax = 1000.0
)

// MaxLength is the largest count ValidateLength accepts.
const MaxLength = math.MaxInt32

// logSampleMin and logSampleMax bound the uniform draw in log space.
var (
	logSampleMin = math.Log(SampleMin)
	logSampleMax = math.Log(SampleMax)
)

// GenerateNumber returns one number in [1, 1000) whose leading digit follows
// Benford's Law.
//
// The number is log-uniform: u is drawn uniformly from [ln 1, ln 1000) and
// exp(u) is returned. Because the range spans whole decades, the leading
// digit d appears with probability log10(1 + 1/d).
//
// Safe for concurrent use (it draws from math/rand's global source).
func GenerateNumber() float64 {
	return logUniform(rand.Float64())
}

// GenerateNumbers returns length independently drawn Benford numbers.
// It fails with ErrInvalidLength when length < 1.
func GenerateNumbers(length int) ([]float64, error) {
	if length < 1 {
		return nil, &LengthError{Length: float64(length)}
	}

	numbers := make([]float64, length)
	for i := range numbers {
		numbers[i] = GenerateNumber()
	}
	return numbers, nil
}

// ValidateLength converts a caller-supplied count to an int.
//
// Counts often arrive as text or JSON numbers, where 5.5 is expressible.
// Zero, negative, fractional, NaN and infinite counts fail with
// ErrInvalidLength, as do counts above MaxLength.
func ValidateLength(n float64) (int, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 || n != math.Trunc(n) || n > MaxLength {
		return 0, &LengthError{Length: n}
	}
	return int(n), nil
}

// Generator draws Benford numbers from its own random source, which makes
// synthetic datasets reproducible:
//
//	g := benford.NewGenerator(rand.NewSource(42))
//	numbers, err := g.Numbers(50_000)
//
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator over src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Number returns one Benford number in [1, 1000).
func (g *Generator) Number() float64 {
	return logUniform(g.rng.Float64())
}

// Numbers returns length Benford numbers. It fails with ErrInvalidLength
// when length < 1.
func (g *Generator) Numbers(length int) ([]float64, error) {
	if length < 1 {
		return nil, &LengthError{Length: float64(length)}
	}

	numbers := make([]float64, length)
	for i := range numbers {
		numbers[i] = g.Number()
	}
	return numbers, nil
}

// logUniform maps u in [0, 1) onto [SampleMin, SampleMax) in log space.
func logUniform(u float64) float64 {
	return math.Exp(logSampleMin + u*(logSampleMax-logSampleMin))
}
