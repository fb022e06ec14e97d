package benford

import (
	"strings"
	"testing"
)

// AssertConformant verifies that numbers follow the reference distribution
// within cfg.Threshold on every digit.
//
// Use it to pin down datasets that must keep looking natural, such as
// generated fixtures or sampled production ledgers:
//
//	func TestInvoiceAmounts(t *testing.T) {
//	    benford.AssertConformant(t, amounts, benford.DefaultAnalysisConfig())
//	}
func AssertConformant(t testing.TB, numbers []float64, cfg AnalysisConfig) Report {
	t.Helper()

	report, err := AnalyzeWith(numbers, cfg)
	if err != nil {
		t.Fatalf("Failed to analyze dataset: %v", err)
	}

	if !report.IsFollowingBenfordLaw {
		t.Errorf("Dataset does not follow Benford's Law (threshold %.4f)\n"+
			"Failing digits: %s\n"+
			"Worst digit %s deviates by %.4f.",
			report.Threshold, strings.Join(report.Failing(), ", "),
			report.WorstDigit, report.MaxDeviation)
		return report
	}

	t.Logf("✓ Benford conformant: max deviation %.4f on digit %s (threshold: %.4f)",
		report.MaxDeviation, report.WorstDigit, report.Threshold)
	t.Logf("  n = %d, MAD = %.4f", report.SampleSize, report.MeanAbsoluteDeviation)
	return report
}

// AssertNonConformant verifies that at least one digit deviates by
// cfg.Threshold or more. Useful for detectors: fabricated or uniformly
// distributed figures should be flagged.
func AssertNonConformant(t testing.TB, numbers []float64, cfg AnalysisConfig) Report {
	t.Helper()

	report, err := AnalyzeWith(numbers, cfg)
	if err != nil {
		t.Fatalf("Failed to analyze dataset: %v", err)
	}

	if report.IsFollowingBenfordLaw {
		t.Errorf("Dataset unexpectedly follows Benford's Law\n"+
			"Max deviation %.4f on digit %s is below threshold %.4f.",
			report.MaxDeviation, report.WorstDigit, report.Threshold)
		return report
	}

	t.Logf("✓ Benford violation detected on digits %s", strings.Join(report.Failing(), ", "))
	return report
}

// PrintAnalysis outputs the per-digit table to the test log.
func PrintAnalysis(t testing.TB, report Report, reference Distribution) {
	t.Helper()

	if reference == nil {
		reference = StandardBenford()
	}

	t.Logf("\n=== Benford Analysis ===")
	t.Logf("  n = %d, threshold = %.4f", report.SampleSize, report.Threshold)
	t.Logf("  Digit  Count     Observed  Expected  Deviation")
	t.Logf("  -----  --------  --------  --------  ---------")
	for _, digit := range digitKeys {
		mark := "✓"
		if dev, ok := report.FirstDigitAccuracies[digit]; ok && !(dev < report.Threshold) {
			mark = "✗"
		}
		t.Logf("  %-5s  %8d  %8.4f  %8.4f  %9.4f %s",
			digit,
			report.FirstDigitCounts[digit],
			report.FirstDigitProbabilities[digit],
			reference[digit],
			report.FirstDigitAccuracies[digit],
			mark)
	}

	if report.IsFollowingBenfordLaw {
		t.Logf("  ✓ Follows Benford's Law")
	} else {
		t.Logf("  ✗ Does not follow Benford's Law (failing: %s)", strings.Join(report.Failing(), ", "))
	}
}
