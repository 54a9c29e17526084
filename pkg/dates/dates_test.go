package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"slash day-first", "14/05/1990", "14/05/1990"},
		{"dash day-first", "14-05-1990", "14/05/1990"},
		{"year-first dash", "1990-05-14", "14/05/1990"},
		{"year-first slash", "1990/05/14", "14/05/1990"},
		{"unpadded", "4/5/1990", "04/05/1990"},
		{"two-digit year low", "14/05/24", "14/05/2024"},
		{"two-digit year high", "14/05/90", "14/05/1990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeTextualMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dash abbreviated", "14-May-1990", "14/05/1990"},
		{"space abbreviated", "14 May 1990", "14/05/1990"},
		{"full month", "14 January 1990", "14/01/1990"},
		{"month-first with comma", "May 14, 1990", "14/05/1990"},
		{"lowercase", "14-may-1990", "14/05/1990"},
		{"two-digit year", "14-May-90", "14/05/1990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeTwoDigitYearPivot(t *testing.T) {
	// Values below 50 expand to 20xx, 50 and above to 19xx.
	assert.Equal(t, "01/01/2049", Normalize("01-Jan-49"))
	assert.Equal(t, "01/01/1950", Normalize("01-Jan-50"))
}

func TestNormalizeEpochMillis(t *testing.T) {
	// 1990-05-14T00:00:00Z is 642643200000ms; in IST that is 05:30 the
	// same day.
	assert.Equal(t, "14/05/1990", Normalize("642643200000"))

	// 1990-05-13T19:00:00Z crosses midnight in IST (+05:30).
	assert.Equal(t, "14/05/1990", Normalize("642625200000"))
}

func TestNormalizeISO(t *testing.T) {
	assert.Equal(t, "14/05/1990", Normalize("1990-05-14T06:00:00Z"))

	// An instant late on the 13th UTC lands on the 14th in IST.
	assert.Equal(t, "14/05/1990", Normalize("1990-05-13T20:00:00Z"))

	// Without zone suffix.
	assert.Equal(t, "14/05/1990", Normalize("1990-05-14T06:00:00"))
}

func TestNormalizePassthrough(t *testing.T) {
	// Parse failures and empty input return the original value unchanged.
	tests := []string{
		"",
		"not a date",
		"14/05",
		"32/01/1990",
		"29/02/1990",
		"14/13/1990",
		"14/05/199",
	}

	for _, input := range tests {
		assert.Equal(t, input, Normalize(input), "input %q should pass through", input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"14-May-1990", "1990-05-14", "4/5/24", "642643200000"}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", input)
	}
}

func TestNormalizeLeapDay(t *testing.T) {
	assert.Equal(t, "29/02/2024", Normalize("29/02/2024"))
	// 1990 is not a leap year
	assert.Equal(t, "29/02/1990", Normalize("29/02/1990")) // passthrough, not normalized
}
