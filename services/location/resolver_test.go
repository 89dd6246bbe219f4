package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/services/location"
)

func TestResolve_ExactCode(t *testing.T) {
	r := location.NewResolver()

	for _, input := range []string{"ATL", "atl", " Atl "} {
		res := r.Resolve(input)
		require.Equal(t, location.KindMatch, res.Kind, "input %q", input)
		assert.Equal(t, "ATL", res.Match.Code)
		assert.Equal(t, "Atlanta", res.Match.City)
	}
}

func TestResolve_Alias(t *testing.T) {
	r := location.NewResolver()

	tests := []struct {
		input string
		code  string
	}{
		{"london", "LON"},
		{"New York", "NYC"},
		{"la", "LAX"},
		{"washington d.c.", "WAS"},
	}
	for _, tt := range tests {
		res := r.Resolve(tt.input)
		require.Equal(t, location.KindMatch, res.Kind, "input %q", tt.input)
		assert.Equal(t, tt.code, res.Match.Code)
	}
}

func TestResolve_CityName(t *testing.T) {
	r := location.NewResolver()

	res := r.Resolve("Atlanta")
	require.Equal(t, location.KindMatch, res.Kind)
	assert.Equal(t, "ATL", res.Match.Code)
}

func TestResolve_CountryAmbiguous(t *testing.T) {
	r := location.NewResolver()

	res := r.Resolve("Germany")
	require.Equal(t, location.KindAmbiguous, res.Kind)
	require.NotEmpty(t, res.Candidates)

	var codes []string
	for _, c := range res.Candidates {
		codes = append(codes, c.Entry.Code)
	}
	assert.Contains(t, codes, "FRA")
	assert.Contains(t, codes, "MUC")
	assert.Contains(t, codes, "BER")
}

func TestResolve_FuzzySingleCandidate(t *testing.T) {
	r := location.NewResolver()

	// One misspelling, only one alias above the score threshold.
	res := r.Resolve("Lundon")
	require.Equal(t, location.KindMatch, res.Kind)
	assert.Equal(t, "LON", res.Match.Code)
}

func TestResolve_FuzzyHighConfidence(t *testing.T) {
	r := location.NewResolver()

	// "neww york" scores above the high-confidence bar against "new york"
	// even though "new york city" is also a candidate.
	res := r.Resolve("neww york")
	require.Equal(t, location.KindMatch, res.Kind)
	assert.Equal(t, "NYC", res.Match.Code)
}

func TestResolve_EmbeddedCodeToken(t *testing.T) {
	r := location.NewResolver()

	res := r.Resolve("to JFK!!")
	require.Equal(t, location.KindMatch, res.Kind)
	assert.Equal(t, "JFK", res.Match.Code)
}

func TestResolve_NotFound(t *testing.T) {
	r := location.NewResolver()

	for _, input := range []string{"", "   ", "Zzzzz"} {
		res := r.Resolve(input)
		assert.Equal(t, location.KindNotFound, res.Kind, "input %q", input)
	}
}

func TestLookup(t *testing.T) {
	r := location.NewResolver()

	entry, ok := r.Lookup("nyc")
	require.True(t, ok)
	assert.True(t, entry.IsMetro())
	assert.Contains(t, entry.Airports, "JFK")

	_, ok = r.Lookup("XXX")
	assert.False(t, ok)
}
