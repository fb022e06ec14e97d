package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	benford "github.com/maxgfr/benford-law"
)

// MarkdownWriter outputs GitHub-flavored Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs one report section.
func (w *MarkdownWriter) Write(result *Result) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeDigits(md, result)
	w.writePieChart(md, result)
	w.writeVerdict(md, result)

	return md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *Result) {
	rep := result.Report

	md.H1("Benford Analysis")
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + result.Source + "`"},
		{"Sample size", strconv.Itoa(rep.SampleSize)},
		{"Threshold", formatProb(rep.Threshold)},
		{"Max deviation", formatProb(rep.MaxDeviation)},
		{"Mean absolute deviation", formatProb(rep.MeanAbsoluteDeviation)},
	}
	if result.Skipped > 0 {
		rows = append(rows, []string{"Skipped tokens", strconv.Itoa(result.Skipped)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDigits(md *markdown.Markdown, result *Result) {
	rep := result.Report

	md.H2("Leading Digits")
	md.PlainText("")

	rows := make([][]string, 0, 9)
	for _, digit := range benford.Digits() {
		expected, deviation := "-", "-"
		if e, ok := result.expected(digit); ok {
			expected = formatProb(e)
		}
		if d, ok := rep.FirstDigitAccuracies[digit]; ok {
			deviation = formatProb(d)
		}
		rows = append(rows, []string{
			digit,
			strconv.Itoa(rep.FirstDigitCounts[digit]),
			formatProb(rep.FirstDigitProbabilities[digit]),
			expected,
			deviation,
			result.mark(digit),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Digit", "Count", "Observed", "Expected", "Deviation", ""},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *Result) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Leading Digit Counts"),
		piechart.WithShowData(true),
	)

	for _, digit := range benford.Digits() {
		if n := result.Report.FirstDigitCounts[digit]; n > 0 {
			chart.LabelAndIntValue(digit, uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeVerdict(md *markdown.Markdown, result *Result) {
	rep := result.Report

	md.H2("Verdict")
	md.PlainText("")

	if rep.IsFollowingBenfordLaw {
		md.Tip(fmt.Sprintf("Follows Benford's Law. Every digit deviates by less than %s.",
			formatProb(rep.Threshold)))
	} else {
		md.Warningf("Does not follow Benford's Law. Failing digits: %s.",
			strings.Join(rep.Failing(), ", "))
	}
	md.PlainText("")
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}
