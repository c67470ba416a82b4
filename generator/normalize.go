package generator

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateParts holds the components of a calendar date for grid rendering.
// All fields are blank when the source date was missing or unparseable.
type DateParts struct {
	Day   string
	Month string
	Year  string
}

// IsZero reports whether no date could be resolved.
func (p DateParts) IsZero() bool {
	return p.Day == "" && p.Month == "" && p.Year == ""
}

// SplitDate breaks a date-like string into zero-padded day/month/year
// components using the input's own calendar date, so a timestamp carrying
// an offset never shifts to the previous or next day.
func SplitDate(input string) DateParts {
	normalized := NormalizeDate(input)
	if normalized == "" {
		return DateParts{}
	}
	return DateParts{
		Day:   normalized[8:10],
		Month: normalized[5:7],
		Year:  normalized[0:4],
	}
}

// NormalizeDate reduces a date-like string to YYYY-MM-DD, or "" when it
// cannot be parsed. A timestamp keeps the calendar date of its own offset.
func NormalizeDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if dateOnlyRe.MatchString(s) {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return ""
		}
		return s
	}
	t, ok := parseAny(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// NormalizeInstant converts a date input to a full ISO-8601 UTC instant.
// A bare YYYY-MM-DD is taken as UTC midnight of that date. Returns "" when
// the input cannot be parsed.
func NormalizeInstant(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if dateOnlyRe.MatchString(s) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	}
	t, ok := parseAny(s)
	if !ok {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseAny(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
		"02/01/2006",
		"02-01-2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SanitizeFilename strips diacritics, drops characters outside
// [A-Za-z0-9 _-], collapses whitespace runs into single underscores and
// truncates to 100 characters. An empty result is the caller's cue to
// substitute a default token.
func SanitizeFilename(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	return cleaned
}

// GridValue prepares a value for a fixed-length character grid: strips
// everything outside [A-Z0-9], upper-cases, pads with spaces to length and
// truncates overflow.
func GridValue(value string, length int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > length {
		return s[:length]
	}
	return s + strings.Repeat(" ", length-len(s))
}

// FormatPeriod joins the sides of a validity window for display. With both
// sides present the result is "start / end"; with one side, that side
// alone.
func FormatPeriod(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + " / " + end
	case start != "":
		return start
	default:
		return end
	}
}
