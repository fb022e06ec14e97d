package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	benford "github.com/maxgfr/benford-law"
)

// TextWriter prints a human-readable table.
type TextWriter struct {
	output  io.Writer
	printer *message.Printer
}

// NewTextWriter creates a TextWriter that outputs to output.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		output:  output,
		printer: message.NewPrinter(language.English),
	}
}

// Write prints the header, the per-digit table and the verdict.
func (w *TextWriter) Write(result *Result) error {
	rep := result.Report
	p := w.printer

	var b strings.Builder
	b.WriteString("=== Benford Analysis ===\n")
	fmt.Fprintf(&b, "Source:     %s\n", result.Source)
	b.WriteString(p.Sprintf("Sample:     %d numbers\n", rep.SampleSize))
	if result.Skipped > 0 {
		b.WriteString(p.Sprintf("Skipped:    %d invalid tokens\n", result.Skipped))
	}
	fmt.Fprintf(&b, "Threshold:  %.4f\n\n", rep.Threshold)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Digit\tCount\tObserved\tExpected\tDeviation\t\t")
	for _, digit := range benford.Digits() {
		expected := "-"
		if e, ok := result.expected(digit); ok {
			expected = fmt.Sprintf("%.4f", e)
		}
		deviation := "-"
		if d, ok := rep.FirstDigitAccuracies[digit]; ok {
			deviation = fmt.Sprintf("%.4f", d)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%s\t%s\t%s\t\n",
			digit,
			p.Sprintf("%d", rep.FirstDigitCounts[digit]),
			rep.FirstDigitProbabilities[digit],
			expected,
			deviation,
			result.mark(digit))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	b.WriteString("\n")
	if rep.IsFollowingBenfordLaw {
		fmt.Fprintf(&b, "✓ Follows Benford's Law (max deviation %.4f on digit %s)\n",
			rep.MaxDeviation, rep.WorstDigit)
	} else {
		fmt.Fprintf(&b, "✗ Does not follow Benford's Law (failing digits: %s)\n",
			strings.Join(rep.Failing(), ", "))
	}
	fmt.Fprintf(&b, "  MAD = %.4f\n", rep.MeanAbsoluteDeviation)

	_, err := io.WriteString(w.output, b.String())
	return err
}
