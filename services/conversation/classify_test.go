package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeSearch(t *testing.T) {
	assert.True(t, looksLikeSearch("I need a flight from NYC to LAX on Friday"))
	assert.True(t, looksLikeSearch("book a trip departing tomorrow"))
	assert.False(t, looksLikeSearch("hello there"))
}

func TestExtractRoute(t *testing.T) {
	tests := []struct {
		input  string
		origin string
		dest   string
	}{
		{"flights from NYC to LAX", "NYC", "LAX"},
		{"I want a flight from New York to Los Angeles", "New York", "Los Angeles"},
		{"from NYC to LAX on 2025-12-20", "NYC", "LAX"},
		{"from london to paris on next friday", "london", "paris"},
		{"from İzmir to Ⱥlborg on tomorrow", "İzmir", "Ⱥlborg"},
		{"just rambling", "", ""},
	}
	for _, tt := range tests {
		origin, dest := extractRoute(tt.input)
		assert.Equal(t, tt.origin, origin, "input %q", tt.input)
		assert.Equal(t, tt.dest, dest, "input %q", tt.input)
	}
}

func TestExtractDatePhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"from NYC to LAX on 2025-12-20", "2025-12-20"},
		{"from NYC to LAX on next friday please", "next friday please"},
		{"fly out tomorrow", "tomorrow"},
		{"leaving next week", "next week"},
		{"from NYC to LAX", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractDatePhrase(tt.input), "input %q", tt.input)
	}
}

// Lowercasing changes byte widths for some runes ("İ" shrinks, "Ⱥ"
// grows), so the clause offsets must come from the same string that
// gets sliced.
func TestExtractDatePhrase_NonASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"from NYC to LAX ȺȺȺȺȺȺ on x", "x"},
		{"from NYC to LAX Ⱥ on 5/1", "5/1"},
		{"from NYC to LAX İİİİİİİİİİ on tomorrow", "tomorrow"},
		{"İİİİİİİİİİ flying next friday", "next friday"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractDatePhrase(tt.input), "input %q", tt.input)
	}
}

func TestExtractOptionNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"option 2", 2},
		{"I'll take option 3", 3},
		{"select flight 1", 1},
		{"2", 2},
		{"give me the 14:30 one", 14},
		{"none of these", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractOptionNumber(tt.input), "input %q", tt.input)
	}
}

func TestLooksLikeTravelerInfo(t *testing.T) {
	assert.True(t, looksLikeTravelerInfo("John Doe, john@example.com, 1990-05-15, +1 555 0100, male"))
	assert.True(t, looksLikeTravelerInfo("Jane Doe born 1988-02-01"))
	assert.False(t, looksLikeTravelerInfo("yes"))
}

func TestParseTravelerInfo(t *testing.T) {
	info := parseTravelerInfo("John Doe, john.doe@example.com, 1990-05-15, +1 555 0100, male")
	assert.Equal(t, "John", info.FirstName)
	assert.Equal(t, "Doe", info.LastName)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "1990-05-15", info.DateOfBirth)
	assert.Equal(t, "+1 555 0100", info.Phone)
	assert.Equal(t, "MALE", info.Gender)
}

func TestParseTravelerInfo_Newlines(t *testing.T) {
	text := "Jane van Dyke\njane@example.com\n1988-02-01\n555-0199\nfemale"
	info := parseTravelerInfo(text)
	assert.Equal(t, "Jane", info.FirstName)
	assert.Equal(t, "van Dyke", info.LastName)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "1988-02-01", info.DateOfBirth)
	assert.Equal(t, "555-0199", info.Phone)
	assert.Equal(t, "FEMALE", info.Gender)
}
