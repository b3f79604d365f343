package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{12340, "12,340"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, float64(0), Percent(0, 0), "zero total must not divide")
	assert.Equal(t, float64(0), Percent(5, 0))
	assert.Equal(t, float64(50), Percent(50, 100))
	assert.Equal(t, float64(100), Percent(100, 100))
	assert.InDelta(t, 33.33, Percent(1, 3), 0.01)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.00%", FormatPercent(0, 100))
	assert.Equal(t, "0.00%", FormatPercent(0, 0))
	assert.Equal(t, "50.00%", FormatPercent(50, 100))
	assert.Equal(t, "33.33%", FormatPercent(1, 3))
	assert.Equal(t, "100.00%", FormatPercent(100, 100))
}

func TestPercentMonotonic(t *testing.T) {
	prev := float64(-1)
	for p := int64(0); p <= 250; p++ {
		cur := Percent(p, 250)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, float64(100), prev)
}
