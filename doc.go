// Package benford computes and checks conformance to Benford's Law.
//
// # Overview
//
// In many naturally occurring datasets (invoice amounts, populations, river
// lengths, stock prices) the leading significant digit d is not uniform.
// It appears with probability
//
//	P(d) = log10(1 + 1/d)
//
// so about 30% of numbers start with 1 and fewer than 5% start with 9.
// Fabricated or truncated data usually breaks this pattern, which is why the
// law is used in forensic accounting and data-quality checks.
//
// The package has three parts:
//
//   - LeadingDigit     - leading significant digit of one number
//   - GenerateNumbers  - synthetic Benford-distributed samples
//   - Analyze          - per-digit counts, probabilities, deviations, verdict
//
// All of them are pure functions. There is no I/O, no logging and no shared
// mutable state, so every function can be called from any goroutine.
//
// # Quick Start
//
//	report, err := benford.Analyze(amounts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !report.IsFollowingBenfordLaw {
//	    fmt.Printf("suspicious digits: %v\n", report.Failing())
//	}
//
// # Leading Digits
//
// The leading digit is found with logarithms rather than string formatting:
//
//	e     = floor(log10(x))
//	digit = floor(x / 10^e)
//
// Examples:
//   - 1000  → 1
//   - 1.5   → 1 (fractional digits never matter once x ≥ 1)
//   - 0.5   → 5 (first nonzero digit)
//   - 0.007 → 7
//
// Zero, negative numbers, NaN and ±Inf are rejected with ErrNonPositive and
// ErrNotFinite. ErrInvalidDigit guards the floating-point corner cases at
// powers of ten and should never be seen in practice.
//
// # Synthetic Data
//
// A number whose logarithm is uniform over whole decades has Benford-
// distributed leading digits. GenerateNumber draws u from [ln 1, ln 1000)
// and returns exp(u):
//
//	numbers, err := benford.GenerateNumbers(50_000)
//
// For reproducible datasets use a seeded Generator:
//
//	g := benford.NewGenerator(rand.NewSource(42))
//	numbers, err := g.Numbers(50_000)
//
// # Conformance
//
// A dataset conforms when, for every digit of the reference distribution,
//
//	|observed(d) - expected(d)| < threshold
//
// The default threshold is 0.01 against the rounded constants
//
//	1: 0.301  2: 0.176  3: 0.125  4: 0.097  5: 0.079
//	6: 0.067  7: 0.058  8: 0.051  9: 0.046
//
// The check is digit by digit, with no partial credit. It is not a
// significance test: small samples will fail because their proportions are
// noisy, and that is intended. Supply a different threshold or reference
// through AnalysisConfig:
//
//	cfg := benford.DefaultAnalysisConfig()
//	cfg.Threshold = 0.02
//	cfg.Reference = benford.ExactBenford()
//	report, err := benford.AnalyzeWith(amounts, cfg)
//
// # Errors
//
// Every failure matches one sentinel with errors.Is:
//
//   - ErrInvalidLength    - sample count not a positive integer
//   - ErrEmptyInput       - nothing to analyze
//   - ErrInvalidThreshold - threshold outside (0, 1)
//   - ErrNotFinite        - NaN or ±Inf in the dataset
//   - ErrNonPositive      - zero or negative number in the dataset
//   - ErrInvalidDigit     - internal consistency check
//
// Use errors.As with *ValueError to find the offending element.
//
// # Testing
//
// Use assertions to pin down conformance properties:
//
//	func TestLedger(t *testing.T) {
//	    benford.AssertConformant(t, ledger, benford.DefaultAnalysisConfig())
//	}
//
//	func TestFabricatedLedger(t *testing.T) {
//	    benford.AssertNonConformant(t, fabricated, benford.DefaultAnalysisConfig())
//	}
//
// # See Also
//
//   - cmd/benford - command-line front end (generate, analyze, history)
//   - examples/   - working code samples
package benford
