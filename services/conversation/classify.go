// File: services/conversation/classify.go
package conversation

import (
	"regexp"
	"strings"

	"voyago/models"
)

// Lightweight keyword heuristics for routing a turn within the current
// state. A miss re-prompts, it never errors, so false negatives are cheap.

var (
	flightTerms    = []string{"flight", "travel", "trip", "book"}
	dateTerms      = []string{"on", "date", "depart", "leave", "return"}
	selectionTerms = []string{"select", "choose", "book", "option", "flight"}
	genderTerms    = []string{"male", "female", "gender"}
	dobTerms       = []string{"birth", "dob", "born"}

	optionAfterKeywordRe = regexp.MustCompile(`(?:option|flight|number|select|choose|book)\s*([0-9]+)`)
	anyNumberRe          = regexp.MustCompile(`\d+`)
	isoDateRe            = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	fromToRe             = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(\S+(?:\s+\S+)?)`)
	onClauseRe           = regexp.MustCompile(`(?i)\s+on\b.*$`)
)

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func looksLikeSearch(text string) bool {
	lower := strings.ToLower(text)
	hasFromTo := strings.Contains(lower, "from") && strings.Contains(lower, "to")
	return hasFromTo || (containsAny(lower, flightTerms) && containsAny(lower, dateTerms))
}

// extractRoute pulls the origin and destination phrases out of a
// "from X to Y" construction. The destination phrase stops before a
// trailing date clause ("on friday").
func extractRoute(text string) (origin, destination string) {
	m := fromToRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	origin = strings.TrimSpace(m[1])
	destination = strings.TrimSpace(m[2])
	destination = onClauseRe.ReplaceAllString(destination, "")
	destination = strings.TrimRight(destination, ".,!?")
	origin = strings.TrimRight(origin, ".,!?")
	return origin, destination
}

// extractDatePhrase finds the part of the message that likely names a
// travel date: the clause after "on", or a bare date keyword. All
// searching and slicing happens on the lowered copy; byte offsets into
// the original string would not line up, since ToLower can change rune
// widths. The date resolver lowercases its input anyway.
func extractDatePhrase(text string) string {
	lower := strings.ToLower(text)

	if m := isoDateRe.FindString(lower); m != "" {
		return m
	}

	if i := strings.Index(lower, " on "); i >= 0 {
		phrase := strings.TrimSpace(lower[i+4:])
		phrase = strings.TrimRight(phrase, ".,!?")
		// Cap the clause so a trailing sentence does not confuse parsing.
		words := strings.Fields(phrase)
		if len(words) > 4 {
			words = words[:4]
		}
		return strings.Join(words, " ")
	}

	for _, term := range []string{"today", "tomorrow"} {
		if strings.Contains(lower, term) {
			return term
		}
	}
	if i := strings.Index(lower, "next "); i >= 0 {
		phrase := strings.TrimSpace(lower[i:])
		phrase = strings.TrimRight(phrase, ".,!?")
		words := strings.Fields(phrase)
		if len(words) > 2 {
			words = words[:2]
		}
		return strings.Join(words, " ")
	}
	return ""
}

func looksLikeSelection(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, selectionTerms) || anyNumberRe.MatchString(text)
}

// extractOptionNumber finds the selected option: a number after a
// selection keyword, a bare number, or any number as a last resort.
// Returns 0 when no number is present.
func extractOptionNumber(text string) int {
	lower := strings.ToLower(text)
	if m := optionAfterKeywordRe.FindStringSubmatch(lower); m != nil {
		return atoi(m[1])
	}
	trimmed := strings.TrimSpace(text)
	if anyNumberRe.MatchString(trimmed) && trimmed == anyNumberRe.FindString(trimmed) {
		return atoi(trimmed)
	}
	if m := anyNumberRe.FindString(text); m != "" {
		return atoi(m)
	}
	return 0
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func looksLikeTravelerInfo(text string) bool {
	lower := strings.ToLower(text)

	hasEmail := false
	if i := strings.Index(lower, "@"); i >= 0 {
		hasEmail = strings.Contains(lower[i:], ".")
	}
	hasName := len(strings.Fields(text)) >= 2
	hasGender := containsAny(lower, genderTerms)
	hasDOB := strings.ContainsAny(text, "-/") || containsAny(lower, dobTerms)

	return (hasEmail && hasName) || (hasName && (hasGender || hasDOB))
}

// parseTravelerInfo extracts traveler fields from a comma or newline
// separated message. The first part is taken as the full name.
func parseTravelerInfo(text string) models.TravelerInfo {
	var parts []string
	if strings.Contains(text, ",") {
		for _, p := range strings.Split(text, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	} else {
		for _, p := range strings.Split(text, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}

	var info models.TravelerInfo

	if len(parts) > 0 {
		nameParts := strings.Fields(parts[0])
		if len(nameParts) >= 2 {
			info.FirstName = nameParts[0]
			info.LastName = strings.Join(nameParts[1:], " ")
		}
	}

	for _, part := range parts {
		if info.Email == "" {
			if i := strings.Index(part, "@"); i >= 0 && strings.Contains(part[i:], ".") {
				info.Email = strings.TrimSpace(part)
				continue
			}
		}
		if info.DateOfBirth == "" {
			if m := isoDateRe.FindString(part); m != "" {
				info.DateOfBirth = m
				continue
			}
		}
	}

	for _, part := range parts {
		if part == info.Email || strings.Contains(part, info.DateOfBirth) && info.DateOfBirth != "" {
			continue
		}
		if anyNumberRe.MatchString(part) {
			var phone strings.Builder
			for _, c := range part {
				if c >= '0' && c <= '9' || strings.ContainsRune("+-() ", c) {
					phone.WriteRune(c)
				}
			}
			if p := strings.TrimSpace(phone.String()); p != "" {
				info.Phone = p
				break
			}
		}
	}

	for _, part := range parts {
		lower := strings.ToLower(part)
		if strings.Contains(lower, "female") {
			info.Gender = "FEMALE"
			break
		}
		if strings.Contains(lower, "male") {
			info.Gender = "MALE"
			break
		}
	}

	return info
}
