package benford

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrInvalidLength is returned when a sample count is zero, negative,
	// not a whole number, or larger than MaxLength.
	ErrInvalidLength = errors.New("invalid length: must be a positive integer")

	// ErrEmptyInput is returned when an analysis is requested for no numbers.
	ErrEmptyInput = errors.New("empty input: at least one number is required")

	// ErrInvalidThreshold is returned when the conformance threshold is not
	// strictly inside (0, 1).
	ErrInvalidThreshold = errors.New("invalid threshold: must be in the open interval (0, 1)")

	// ErrNotFinite is returned for NaN and ±Inf.
	ErrNotFinite = errors.New("number is not finite")

	// ErrNonPositive is returned for zero and negative numbers.
	ErrNonPositive = errors.New("number is not positive")

	// ErrInvalidDigit signals that digit extraction produced something
	// outside 1..9. It indicates a floating-point edge case, not bad input.
	ErrInvalidDigit = errors.New("extracted digit outside 1..9")
)

// ValueError reports a rejected number.
type ValueError struct {
	Index int     // Position in the analyzed dataset, -1 for a lone value
	Value float64 // The offending number
	Err   error   // ErrNotFinite, ErrNonPositive or ErrInvalidDigit
}

func (e *ValueError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("number at index %d (%v): %v", e.Index, e.Value, e.Err)
	}
	return fmt.Sprintf("number %v: %v", e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// ThresholdError reports a threshold outside (0, 1).
type ThresholdError struct {
	Threshold float64
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("threshold %v: %v", e.Threshold, ErrInvalidThreshold)
}

func (e *ThresholdError) Unwrap() error {
	return ErrInvalidThreshold
}

// LengthError reports a rejected sample count.
type LengthError struct {
	Length float64
}

func (e *LengthError) Error() string {
	if e.Length > MaxLength && !math.IsInf(e.Length, 1) {
		return fmt.Sprintf("length %v: exceeds the maximum sample size of %d", e.Length, MaxLength)
	}
	return fmt.Sprintf("length %v: %v", e.Length, ErrInvalidLength)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}
