package benford

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingT captures failures instead of failing the real test.
type recordingT struct {
	testing.TB
	errors []string
	fatals []string
	logs   []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordingT) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func uniformDigits() []float64 {
	numbers := make([]float64, 0, 900)
	for i := 0; i < 100; i++ {
		for d := 1; d <= 9; d++ {
			numbers = append(numbers, float64(d))
		}
	}
	return numbers
}

func TestAssertConformant(t *testing.T) {
	numbers, err := NewGenerator(rand.NewSource(1)).Numbers(50_000)
	assert.NoError(t, err)

	rec := &recordingT{}
	report := AssertConformant(rec, numbers, DefaultAnalysisConfig())
	assert.True(t, report.IsFollowingBenfordLaw)
	assert.Empty(t, rec.errors)
	assert.Empty(t, rec.fatals)
	assert.NotEmpty(t, rec.logs)
}

func TestAssertConformant_ReportsFailingDigits(t *testing.T) {
	rec := &recordingT{}
	report := AssertConformant(rec, uniformDigits(), DefaultAnalysisConfig())

	assert.False(t, report.IsFollowingBenfordLaw)
	assert.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "Failing digits: 1, 2, 3")
}

func TestAssertConformant_AnalysisError(t *testing.T) {
	rec := &recordingT{}
	AssertConformant(rec, nil, DefaultAnalysisConfig())
	assert.Len(t, rec.fatals, 1)
	assert.Contains(t, rec.fatals[0], "empty input")
}

func TestAssertNonConformant(t *testing.T) {
	rec := &recordingT{}
	report := AssertNonConformant(rec, uniformDigits(), DefaultAnalysisConfig())
	assert.False(t, report.IsFollowingBenfordLaw)
	assert.Empty(t, rec.errors)

	numbers, err := NewGenerator(rand.NewSource(1)).Numbers(50_000)
	assert.NoError(t, err)

	rec = &recordingT{}
	AssertNonConformant(rec, numbers, DefaultAnalysisConfig())
	assert.Len(t, rec.errors, 1)
}

func TestPrintAnalysis(t *testing.T) {
	report, err := Analyze(uniformDigits())
	assert.NoError(t, err)

	rec := &recordingT{}
	PrintAnalysis(rec, report, nil)

	// Title and three header lines, nine digits, verdict.
	assert.Len(t, rec.logs, 1+3+9+1)
	assert.Contains(t, rec.logs[len(rec.logs)-1], "Does not follow")
	assert.Contains(t, rec.logs[4], "✗")

	// The real log, for reading with -v.
	PrintAnalysis(t, report, nil)
}
