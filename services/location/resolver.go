// File: services/location/resolver.go
package location

import (
	"regexp"
	"sort"
	"strings"

	"voyago/models"
)

// Kind classifies the outcome of a resolution attempt.
type Kind int

const (
	KindNotFound Kind = iota
	KindMatch
	KindAmbiguous
)

// Candidate is one possible location for an ambiguous query.
type Candidate struct {
	Entry models.LocationEntry `json:"entry"`
	Alias string               `json:"alias,omitempty"` // alias phrase that produced a fuzzy candidate
	Score float64              `json:"score,omitempty"`
}

// Resolution is the result of resolving free text to a location code.
type Resolution struct {
	Kind       Kind                  `json:"kind"`
	Match      *models.LocationEntry `json:"match,omitempty"`
	Candidates []Candidate           `json:"candidates,omitempty"`
	Truncated  int                   `json:"truncated,omitempty"` // country matches beyond those returned
}

// Resolver maps free text to entries of the built-in airport directory.
// It carries no mutable state and is safe for concurrent use.
type Resolver struct {
	airports  map[string]models.LocationEntry
	aliases   map[string]string
	codes     []string // sorted, for deterministic scans
	aliasKeys []string
}

const (
	fuzzyThreshold      = 0.7
	fuzzyHighConfidence = 0.9
	maxCountryMatches   = 10
	maxFuzzyCandidates  = 5
)

var codeTokenRe = regexp.MustCompile(`\b[A-Za-z]{3}\b`)

func NewResolver() *Resolver {
	r := &Resolver{
		airports: airportDirectory,
		aliases:  cityAliases,
	}
	for code := range r.airports {
		r.codes = append(r.codes, code)
	}
	sort.Strings(r.codes)
	for alias := range r.aliases {
		r.aliasKeys = append(r.aliasKeys, alias)
	}
	sort.Strings(r.aliasKeys)
	return r
}

// Lookup returns the directory entry for an exact code.
func (r *Resolver) Lookup(code string) (models.LocationEntry, bool) {
	entry, ok := r.airports[strings.ToUpper(strings.TrimSpace(code))]
	return entry, ok
}

// Resolve maps free text to a location. Resolution stages, first hit wins:
// exact code, alias table, city name, display-name substring, country
// substring, fuzzy alias match, embedded 3-letter code token.
func (r *Resolver) Resolve(text string) Resolution {
	query := strings.TrimSpace(text)
	if query == "" {
		return Resolution{Kind: KindNotFound}
	}
	upper := strings.ToUpper(query)
	lower := strings.ToLower(query)

	// 1. Exact code match.
	if entry, ok := r.airports[upper]; ok {
		return Resolution{Kind: KindMatch, Match: &entry}
	}

	// 2. Alias table match.
	if code, ok := r.aliases[lower]; ok {
		entry := r.airports[code]
		return Resolution{Kind: KindMatch, Match: &entry}
	}

	// 3. Exact city match.
	if res, ok := r.scanMatches(func(e models.LocationEntry) bool {
		return lower == strings.ToLower(e.City)
	}); ok {
		return res
	}

	// 4. Display-name substring match.
	if res, ok := r.scanMatches(func(e models.LocationEntry) bool {
		return strings.Contains(strings.ToLower(e.Name), lower)
	}); ok {
		return res
	}

	// 5. Country substring match, truncated to a displayable list.
	var countryMatches []Candidate
	for _, code := range r.codes {
		entry := r.airports[code]
		if strings.Contains(strings.ToLower(entry.Country), lower) {
			countryMatches = append(countryMatches, Candidate{Entry: entry})
		}
	}
	if len(countryMatches) > 0 {
		truncated := 0
		if len(countryMatches) > maxCountryMatches {
			truncated = len(countryMatches) - maxCountryMatches
			countryMatches = countryMatches[:maxCountryMatches]
		}
		return Resolution{Kind: KindAmbiguous, Candidates: countryMatches, Truncated: truncated}
	}

	// 6. Fuzzy match against alias phrases.
	if res, ok := r.fuzzyResolve(lower); ok {
		return res
	}

	// 7. Last resort: any embedded 3-letter token that is a known code.
	for _, token := range codeTokenRe.FindAllString(upper, -1) {
		if entry, ok := r.airports[token]; ok {
			return Resolution{Kind: KindMatch, Match: &entry}
		}
	}

	return Resolution{Kind: KindNotFound}
}

// scanMatches collects entries satisfying pred: one hit is a direct match,
// several are returned for disambiguation.
func (r *Resolver) scanMatches(pred func(models.LocationEntry) bool) (Resolution, bool) {
	var matches []Candidate
	for _, code := range r.codes {
		entry := r.airports[code]
		if pred(entry) {
			matches = append(matches, Candidate{Entry: entry})
		}
	}
	switch len(matches) {
	case 0:
		return Resolution{}, false
	case 1:
		entry := matches[0].Entry
		return Resolution{Kind: KindMatch, Match: &entry}, true
	default:
		return Resolution{Kind: KindAmbiguous, Candidates: matches}, true
	}
}

func (r *Resolver) fuzzyResolve(lower string) (Resolution, bool) {
	var candidates []Candidate
	for _, alias := range r.aliasKeys {
		score := similarity(lower, alias)
		if score > fuzzyThreshold {
			candidates = append(candidates, Candidate{
				Entry: r.airports[r.aliases[alias]],
				Alias: alias,
				Score: score,
			})
		}
	}
	if len(candidates) == 0 {
		return Resolution{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) == 1 || candidates[0].Score > fuzzyHighConfidence {
		entry := candidates[0].Entry
		return Resolution{Kind: KindMatch, Match: &entry}, true
	}
	if len(candidates) > maxFuzzyCandidates {
		candidates = candidates[:maxFuzzyCandidates]
	}
	return Resolution{Kind: KindAmbiguous, Candidates: candidates}, true
}

// similarity scores two strings in [0,1]: 1.0 for identical strings,
// length ratio when one contains the other, otherwise a Jaccard-like
// ratio of shared characters. Repeated shared characters can push the
// last form slightly above 1.0; callers only ever threshold it.
func similarity(s1, s2 string) float64 {
	s1 = normalize(s1)
	s2 = normalize(s2)
	if s1 == "" || s2 == "" {
		return 0
	}
	if s1 == s2 {
		return 1.0
	}
	if strings.Contains(s2, s1) {
		return float64(len(s1)) / float64(len(s2))
	}
	if strings.Contains(s1, s2) {
		return float64(len(s2)) / float64(len(s1))
	}

	common := 0
	for _, c := range s1 {
		if strings.ContainsRune(s2, c) {
			common++
		}
	}
	return 2 * float64(common) / float64(len(s1)+len(s2))
}

// normalize lowercases and strips everything but letters and digits.
func normalize(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}
