// Package dates normalizes the heterogeneous date representations that show
// up across enrollment feeds into one canonical DD/MM/YYYY form. Inputs may
// be epoch-milliseconds numerics, ISO timestamps, textual-month dates, or
// delimited numeric dates with 2- or 4-digit years. Instant-valued inputs
// (epoch, ISO) are converted to the fixed display timezone before formatting;
// date-only inputs are reformatted as-is.
//
// Normalization never fails a run: unparseable input is returned unchanged
// and surfaces downstream as a value-level mismatch or validation failure.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// displayZone is the fixed display timezone (IST, UTC+05:30).
var displayZone = time.FixedZone("IST", 5*3600+30*60)

// canonicalLayout is the canonical output form.
const canonicalLayout = "02/01/2006"

// twoDigitYearPivot expands 2-digit years: values below the pivot become
// 20xx, values at or above it become 19xx.
const twoDigitYearPivot = 50

// monthsByPrefix maps lowercase 3-letter month prefixes to month numbers.
var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// isoLayouts are tried in order for inputs carrying a time separator.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// Normalize converts a raw date value to canonical DD/MM/YYYY form. Empty
// input and input that fails to parse are returned unchanged.
func Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	switch {
	case isNumeric(trimmed):
		if out, ok := fromEpochMillis(trimmed); ok {
			return out
		}
	case strings.ContainsRune(trimmed, 'T') && !hasOtherAlpha(trimmed):
		if out, ok := fromISO(trimmed); ok {
			return out
		}
	case hasAlpha(trimmed):
		if out, ok := fromTextualMonth(trimmed); ok {
			return out
		}
	case strings.ContainsAny(trimmed, "/-"):
		if out, ok := fromDelimited(trimmed); ok {
			return out
		}
	}

	return value
}

// fromEpochMillis parses an epoch-milliseconds numeric string.
func fromEpochMillis(value string) (string, bool) {
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", false
	}
	t := time.UnixMilli(millis).In(displayZone)
	if t.Year() < 1 || t.Year() > 9999 {
		return "", false
	}
	return t.Format(canonicalLayout), true
}

// fromISO parses an ISO timestamp and converts the instant to the display
// timezone.
func fromISO(value string) (string, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(displayZone).Format(canonicalLayout), true
		}
	}
	return "", false
}

// fromTextualMonth parses dates carrying a spelled-out month, in any of the
// common arrangements: "01-Jan-2024", "01 Jan 24", "Jan 1, 2024",
// "1 January 2024".
func fromTextualMonth(value string) (string, bool) {
	tokens := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == ',' || r == '.'
	})

	var (
		month    time.Month
		day      = -1
		year     = -1
		haveYear bool
	)

	for _, token := range tokens {
		if m, ok := monthsByPrefix[lowerPrefix(token, 3)]; ok && month == 0 && hasAlpha(token) {
			month = m
			continue
		}
		if !isNumeric(token) {
			return "", false
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return "", false
		}
		switch {
		case len(token) == 4:
			year = n
			haveYear = true
		case !haveYear && len(token) <= 2 && day == -1:
			day = n
		case len(token) == 2 || len(token) == 1:
			if day == -1 {
				day = n
			} else if year == -1 {
				year = expandYear(n)
				haveYear = true
			} else {
				return "", false
			}
		default:
			return "", false
		}
	}

	if month == 0 || day == -1 || year == -1 {
		return "", false
	}
	return formatPlausible(day, int(month), year)
}

// fromDelimited parses purely numeric slash- or dash-separated dates in
// year-first or day-first order.
func fromDelimited(value string) (string, bool) {
	sep := "/"
	if !strings.Contains(value, "/") {
		sep = "-"
	}
	parts := strings.Split(value, sep)
	if len(parts) != 3 {
		return "", false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if !isNumeric(part) {
			return "", false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", false
		}
		nums[i] = n
	}

	var day, month, year int
	if len(strings.TrimSpace(parts[0])) == 4 {
		// Year-first: YYYY-MM-DD
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		// Day-first: DD/MM/YYYY or DD/MM/YY
		day, month = nums[0], nums[1]
		yearPart := strings.TrimSpace(parts[2])
		switch len(yearPart) {
		case 4:
			year = nums[2]
		case 2:
			year = expandYear(nums[2])
		default:
			return "", false
		}
	}

	return formatPlausible(day, month, year)
}

// formatPlausible renders a day/month/year triple in canonical form after
// checking it constructs a real calendar date.
func formatPlausible(day, month, year int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 || year > 9999 {
		return "", false
	}
	// time.Date normalizes out-of-range days (e.g. Feb 30 → Mar 2); a
	// changed day or month means the input was not a real date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year), true
}

// expandYear expands a 2-digit year using the fixed pivot.
func expandYear(year int) int {
	if year < twoDigitYearPivot {
		return 2000 + year
	}
	return 1900 + year
}

// isNumeric reports whether the string is non-empty and all ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// hasAlpha reports whether the string contains any letter.
func hasAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// hasOtherAlpha reports whether the string contains a letter other than the
// ISO time-separator markers T and Z.
func hasOtherAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && r != 'T' && r != 'Z' {
			return true
		}
	}
	return false
}

// lowerPrefix returns the lowercase prefix of s up to n bytes.
func lowerPrefix(s string, n int) string {
	if len(s) < n {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[:n])
}
