// File: services/dates/resolver.go
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolved is a parsed calendar date annotated with its day offset from
// the anchor date. A negative offset marks a past date; surfacing that is
// left to the caller.
type Resolved struct {
	Date        time.Time
	DaysFromNow int
}

// ISO returns the date in YYYY-MM-DD form.
func (r Resolved) ISO() string {
	return r.Date.Format("2006-01-02")
}

// Describe frames the resolved date relative to the anchor for
// human-readable replies.
func (r Resolved) Describe() string {
	iso := r.ISO()
	d := r.DaysFromNow
	switch {
	case d < 0:
		return fmt.Sprintf("Warning: the date %s is in the past (%d days ago).", iso, -d)
	case d == 0:
		return fmt.Sprintf("Date parsed as today: %s", iso)
	case d == 1:
		return fmt.Sprintf("Date parsed as tomorrow: %s", iso)
	case d < 7:
		return fmt.Sprintf("Date parsed as %s: %s (%d days from now)", r.Date.Weekday(), iso, d)
	case d < 30:
		return fmt.Sprintf("Date parsed as %s (%d days / %d weeks from now)", iso, d, d/7)
	case d < 365:
		return fmt.Sprintf("Date parsed as %s (about %d months from now)", iso, d/30)
	default:
		return fmt.Sprintf("Date parsed as %s (about %d years from now)", iso, d/365)
	}
}

// ParseError reports an unparseable or invalid date expression.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse date %q: %s", e.Input, e.Reason)
}

// Guidance is the user-facing hint attached to every parse failure.
const Guidance = "Please provide a date in YYYY-MM-DD format or a clear description like 'May 1st' or 'next Friday'."

var (
	weekdayRe    = regexp.MustCompile(`(next|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	monthDayRe   = regexp.MustCompile(`(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+(\d+)(?:st|nd|rd|th)?`)
	yearTokenRe  = regexp.MustCompile(`\b(20\d{2})\b`)
	numericMDRe  = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}$`)
	numericYMDRe = regexp.MustCompile(`^\d{4}[/-]\d{1,2}[/-]\d{1,2}$`)
)

var weekdays = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2,
	"thursday": 3, "friday": 4, "saturday": 5, "sunday": 6,
}

var monthNums = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var monthTokens = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// Resolve parses a relative or absolute date expression against the
// anchor date. "next month" is a fixed 30-day offset, an approximation
// kept from the source behavior rather than calendar-month arithmetic.
func Resolve(text string, anchor time.Time) (Resolved, error) {
	input := strings.ToLower(strings.TrimSpace(text))
	anchorDay := truncate(anchor)

	// Literal keywords.
	switch input {
	case "today", "now":
		return resolved(anchorDay, anchorDay), nil
	case "tomorrow":
		return resolved(anchorDay.AddDate(0, 0, 1), anchorDay), nil
	case "day after tomorrow":
		return resolved(anchorDay.AddDate(0, 0, 2), anchorDay), nil
	case "next week":
		return resolved(anchorDay.AddDate(0, 0, 7), anchorDay), nil
	case "next month":
		return resolved(anchorDay.AddDate(0, 0, 30), anchorDay), nil
	}

	// "next Monday", "this Friday", ...
	if strings.Contains(input, "next") || strings.Contains(input, "this") {
		m := weekdayRe.FindStringSubmatch(input)
		if m == nil {
			return Resolved{}, &ParseError{Input: text, Reason: "no recognized weekday"}
		}
		prefix, weekday := m[1], m[2]
		target := weekdays[weekday]
		// Weekday numbering with Monday as 0, matching the offsets table.
		current := (int(anchorDay.Weekday()) + 6) % 7
		ahead := target - current
		if ahead <= 0 || prefix == "next" {
			ahead += 7
		}
		return resolved(anchorDay.AddDate(0, 0, ahead), anchorDay), nil
	}

	// "May 1st", "Jan 15", optionally with an explicit year anywhere.
	if containsMonthToken(input) {
		m := monthDayRe.FindStringSubmatch(input)
		if m == nil {
			return Resolved{}, &ParseError{Input: text, Reason: "no recognized month/day"}
		}
		month := monthNums[m[1][:3]]
		day, _ := strconv.Atoi(m[2])

		var year int
		if ym := yearTokenRe.FindStringSubmatch(input); ym != nil {
			year, _ = strconv.Atoi(ym[1])
		} else {
			year = inferYear(anchorDay, month, day)
		}
		if day < 1 || day > daysIn(year, month) {
			return Resolved{}, &ParseError{Input: text, Reason: fmt.Sprintf("invalid day %d for month %d", day, month)}
		}
		return resolved(date(year, month, day), anchorDay), nil
	}

	// "M/D" or "M-D".
	if numericMDRe.MatchString(input) {
		month, day := splitTwo(input)
		if month < 1 || month > 12 {
			return Resolved{}, &ParseError{Input: text, Reason: fmt.Sprintf("invalid month %d, must be between 1 and 12", month)}
		}
		// Day validity is checked against the anchor year even when the
		// resolved year rolls forward, matching the source behavior.
		if day < 1 || day > daysIn(anchorDay.Year(), month) {
			return Resolved{}, &ParseError{Input: text, Reason: fmt.Sprintf("invalid day %d for month %d", day, month)}
		}
		year := inferYear(anchorDay, month, day)
		return resolved(date(year, month, day), anchorDay), nil
	}

	// "YYYY/MM/DD" or "YYYY-MM-DD": no year inference.
	if numericYMDRe.MatchString(input) {
		year, month, day := splitThree(input)
		if month < 1 || month > 12 {
			return Resolved{}, &ParseError{Input: text, Reason: fmt.Sprintf("invalid month %d, must be between 1 and 12", month)}
		}
		if day < 1 || day > daysIn(year, month) {
			return Resolved{}, &ParseError{Input: text, Reason: fmt.Sprintf("invalid day %d for month %d/%d", day, month, year)}
		}
		return resolved(date(year, month, day), anchorDay), nil
	}

	return Resolved{}, &ParseError{Input: text, Reason: "unrecognized date expression"}
}

// inferYear picks the anchor year, rolling forward one year when the
// month/day has already passed relative to the anchor.
func inferYear(anchor time.Time, month, day int) int {
	if month < int(anchor.Month()) || (month == int(anchor.Month()) && day < anchor.Day()) {
		return anchor.Year() + 1
	}
	return anchor.Year()
}

func containsMonthToken(input string) bool {
	for _, tok := range monthTokens {
		if strings.Contains(input, tok) {
			return true
		}
	}
	return false
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func truncate(t time.Time) time.Time {
	return date(t.Year(), int(t.Month()), t.Day())
}

func resolved(d, anchor time.Time) Resolved {
	return Resolved{
		Date:        d,
		DaysFromNow: int(d.Sub(anchor).Hours() / 24),
	}
}

func splitTwo(input string) (int, int) {
	sep := "/"
	if strings.Contains(input, "-") {
		sep = "-"
	}
	parts := strings.Split(input, sep)
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	return a, b
}

func splitThree(input string) (int, int, int) {
	sep := "/"
	if strings.Contains(input, "-") {
		sep = "-"
	}
	parts := strings.Split(input, sep)
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	c, _ := strconv.Atoi(parts[2])
	return a, b, c
}
