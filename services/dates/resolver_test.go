package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/services/dates"
)

// Saturday, March 15 2025.
var anchor = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolve_Literals(t *testing.T) {
	tests := []struct {
		input string
		iso   string
		days  int
	}{
		{"today", "2025-03-15", 0},
		{"now", "2025-03-15", 0},
		{"tomorrow", "2025-03-16", 1},
		{"day after tomorrow", "2025-03-17", 2},
		{"next week", "2025-03-22", 7},
		{"next month", "2025-04-14", 30},
	}
	for _, tt := range tests {
		res, err := dates.Resolve(tt.input, anchor)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.iso, res.ISO(), "input %q", tt.input)
		assert.Equal(t, tt.days, res.DaysFromNow, "input %q", tt.input)
	}
}

func TestResolve_Weekdays(t *testing.T) {
	tests := []struct {
		input string
		iso   string
	}{
		{"next friday", "2025-03-21"},
		{"this sunday", "2025-03-16"},
		{"next saturday", "2025-03-22"},
		{"next monday", "2025-03-17"},
	}
	for _, tt := range tests {
		res, err := dates.Resolve(tt.input, anchor)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.iso, res.ISO(), "input %q", tt.input)
	}
}

func TestResolve_MonthDay(t *testing.T) {
	tests := []struct {
		input string
		iso   string
	}{
		{"May 1st", "2025-05-01"},
		{"may 1", "2025-05-01"},
		{"Jan 15", "2026-01-15"},   // already passed this year
		{"march 10", "2026-03-10"}, // same month, earlier day
		{"december 25", "2025-12-25"},
		{"May 1 2027", "2027-05-01"}, // explicit year wins
	}
	for _, tt := range tests {
		res, err := dates.Resolve(tt.input, anchor)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.iso, res.ISO(), "input %q", tt.input)
	}
}

func TestResolve_NumericMonthDay(t *testing.T) {
	tests := []struct {
		input string
		iso   string
	}{
		{"12/20", "2025-12-20"},
		{"3/1", "2026-03-01"},
		{"3-20", "2025-03-20"},
	}
	for _, tt := range tests {
		res, err := dates.Resolve(tt.input, anchor)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.iso, res.ISO(), "input %q", tt.input)
	}
}

func TestResolve_FullDate(t *testing.T) {
	res, err := dates.Resolve("2025-12-20", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-20", res.ISO())

	// Explicit dates resolve as given, even in the past.
	res, err = dates.Resolve("2024/06/01", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", res.ISO())
	assert.Negative(t, res.DaysFromNow)
	assert.Contains(t, res.Describe(), "in the past")
}

func TestResolve_Invalid(t *testing.T) {
	inputs := []string{
		"someday",
		"next christmas", // no weekday after "next"
		"Feb 30",
		"13/1",
		"2/30",
		"2025-13-01",
		"2025-02-30",
	}
	for _, input := range inputs {
		_, err := dates.Resolve(input, anchor)
		require.Error(t, err, "input %q", input)

		var parseErr *dates.ParseError
		assert.ErrorAs(t, err, &parseErr, "input %q", input)
	}
}

func TestDescribe(t *testing.T) {
	res, err := dates.Resolve("tomorrow", anchor)
	require.NoError(t, err)
	assert.Contains(t, res.Describe(), "tomorrow")

	res, err = dates.Resolve("today", anchor)
	require.NoError(t, err)
	assert.Contains(t, res.Describe(), "today")
}
