package benford

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the default maximum per-digit deviation.
const DefaultThreshold = 0.01

// AnalysisConfig controls a conformance analysis.
type AnalysisConfig struct {
	// Threshold is the per-digit deviation a dataset must stay strictly
	// below. Must be in (0, 1).
	Threshold float64

	// Reference is the expected distribution. Nil means StandardBenford.
	// Overrides are used as given; they are not required to sum to 1.
	Reference Distribution
}

// DefaultAnalysisConfig returns the threshold 0.01 against the standard
// Benford constants.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Threshold: DefaultThreshold,
		Reference: StandardBenford(),
	}
}

// Report is the result of a conformance analysis.
//
// Digits that never occur are absent from FirstDigitCounts and
// FirstDigitProbabilities; they count as probability 0 against the
// reference. FirstDigitAccuracies has one entry per reference digit.
type Report struct {
	IsFollowingBenfordLaw   bool               `json:"isFollowingBenfordLaw" yaml:"isFollowingBenfordLaw"`
	FirstDigitCounts        map[string]int     `json:"firstDigitCounts" yaml:"firstDigitCounts"`
	FirstDigitProbabilities map[string]float64 `json:"firstDigitProbabilities" yaml:"firstDigitProbabilities"`
	FirstDigitAccuracies    map[string]float64 `json:"firstDigitAccuracies" yaml:"firstDigitAccuracies"`

	// Diagnostics. They summarise FirstDigitAccuracies and never change
	// the verdict.
	SampleSize            int     `json:"sampleSize" yaml:"sampleSize"`
	Threshold             float64 `json:"threshold" yaml:"threshold"`
	MaxDeviation          float64 `json:"maxDeviation" yaml:"maxDeviation"`
	WorstDigit            string  `json:"worstDigit,omitempty" yaml:"worstDigit,omitempty"`
	MeanAbsoluteDeviation float64 `json:"meanAbsoluteDeviation" yaml:"meanAbsoluteDeviation"`
}

// Failing returns the digits whose deviation is not below the threshold,
// in ascending order. Empty when the dataset conforms.
func (r Report) Failing() []string {
	var failing []string
	for digit, deviation := range r.FirstDigitAccuracies {
		if !(deviation < r.Threshold) {
			failing = append(failing, digit)
		}
	}
	sort.Strings(failing)
	return failing
}

// Analyze checks numbers against the standard Benford distribution with
// the default threshold of 0.01.
func Analyze(numbers []float64) (Report, error) {
	return AnalyzeWith(numbers, DefaultAnalysisConfig())
}

// AnalyzeWith tabulates the leading digits of numbers and compares them
// with cfg.Reference.
//
// Validation happens before any counting:
//   - ErrEmptyInput if numbers is empty
//   - ErrInvalidThreshold if cfg.Threshold is not in (0, 1)
//   - ErrNotFinite / ErrNonPositive for the first bad element, as a
//     *ValueError carrying its index
//
// No partial report is ever returned with an error.
//
// The dataset conforms when every reference digit satisfies
//
//	|observed(d) - reference(d)| < threshold
//
// with observed(d) = 0 for digits that never occur. One failing digit is
// enough to reject the whole dataset.
func AnalyzeWith(numbers []float64, cfg AnalysisConfig) (Report, error) {
	if len(numbers) == 0 {
		return Report{}, ErrEmptyInput
	}
	if math.IsNaN(cfg.Threshold) || cfg.Threshold <= 0 || cfg.Threshold >= 1 {
		return Report{}, &ThresholdError{Threshold: cfg.Threshold}
	}

	reference := cfg.Reference
	if reference == nil {
		reference = StandardBenford()
	}

	// Nine buckets, indexed by digit-1.
	var tally [9]int
	for i, x := range numbers {
		digit, err := leadingDigit(x, i)
		if err != nil {
			return Report{}, err
		}
		tally[digit-1]++
	}

	total := float64(len(numbers))
	counts := make(map[string]int)
	probabilities := make(map[string]float64)
	for i, n := range tally {
		if n == 0 {
			continue
		}
		key := digitKey(i + 1)
		counts[key] = n
		probabilities[key] = float64(n) / total
	}

	keys := sortedKeys(reference)
	accuracies := make(map[string]float64, len(keys))
	deviations := make([]float64, len(keys))
	conforms := true
	for i, key := range keys {
		// Absent digits contribute 0.
		deviation := math.Abs(probabilities[key] - reference[key])
		accuracies[key] = deviation
		deviations[i] = deviation
		if !(deviation < cfg.Threshold) {
			conforms = false
		}
	}

	report := Report{
		IsFollowingBenfordLaw:   conforms,
		FirstDigitCounts:        counts,
		FirstDigitProbabilities: probabilities,
		FirstDigitAccuracies:    accuracies,
		SampleSize:              len(numbers),
		Threshold:               cfg.Threshold,
	}

	if len(deviations) > 0 {
		worst := floats.MaxIdx(deviations)
		report.WorstDigit = keys[worst]
		report.MaxDeviation = deviations[worst]
		report.MeanAbsoluteDeviation = floats.Sum(deviations) / float64(len(deviations))
	}

	return report, nil
}
