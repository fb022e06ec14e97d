package benford

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBenford(t *testing.T) {
	d := StandardBenford()
	require.Len(t, d, 9)

	want := Distribution{
		"1": 0.301, "2": 0.176, "3": 0.125, "4": 0.097, "5": 0.079,
		"6": 0.067, "7": 0.058, "8": 0.051, "9": 0.046,
	}
	assert.Equal(t, want, d)

	// Rounded constants sum to 1.000.
	assert.InDelta(t, 1.0, d.Sum(), 1e-9)
}

func TestStandardBenford_Independent(t *testing.T) {
	a := StandardBenford()
	a["1"] = 0.5

	b := StandardBenford()
	assert.Equal(t, 0.301, b["1"], "mutating one copy must not leak into another")
}

func TestExactBenford(t *testing.T) {
	d := ExactBenford()
	require.Len(t, d, 9)
	assert.InDelta(t, 1.0, d.Sum(), 1e-12)

	standard := StandardBenford()
	for _, digit := range Digits() {
		// The rounded table is within half a unit of the third decimal.
		assert.InDelta(t, d[digit], standard[digit], 0.0005, "digit %s", digit)
	}
	assert.Equal(t, math.Log10(2), d["1"])
}

func TestDigits(t *testing.T) {
	digits := Digits()
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, digits)

	digits[0] = "x"
	assert.Equal(t, "1", Digits()[0])
}

func TestDistribution_Clone(t *testing.T) {
	var nilDist Distribution
	assert.Nil(t, nilDist.Clone())

	d := Distribution{"1": 0.5, "2": 0.5}
	c := d.Clone()
	c["1"] = 0.9
	assert.Equal(t, 0.5, d["1"])
	assert.InDelta(t, 1.4, c.Sum(), 1e-12)
}

func TestDigitKey(t *testing.T) {
	for i := 1; i <= 9; i++ {
		assert.Equal(t, string(rune('0'+i)), digitKey(i))
	}
}
