package rocdate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ris-pipeline/internal/normalizer"
)

// Registration dates come off the RIS site in four shapes. Patterns are
// tried in this order; a match whose captured values fail validation moves
// the parser on to the next pattern, not to a later match of the same one.
var patterns = []*regexp.Regexp{
	// 民國114年12月30日
	regexp.MustCompile(`民國(\d+)年(\d+)月(\d+)日`),
	// 114年12月30日
	regexp.MustCompile(`(\d+)年(\d+)月(\d+)日`),
	// 114/12/30
	regexp.MustCompile(`(\d+)/(\d+)/(\d+)`),
	// 114-12-30
	regexp.MustCompile(`(\d+)-(\d+)-(\d+)`),
}

const (
	// Plausibility window for ROC years (民國100-120年 = 2011-2031), not a
	// formal calendar bound. Years outside it are non-matches.
	minROCYear = 100
	maxROCYear = 120

	rocOffset = 1911
)

// Parse extracts a calendar date from a ROC date string and converts it to
// the Western calendar. Input is cleaned first, and each pattern searches
// the whole string rather than anchoring at the start. Returns ok=false
// when no pattern yields a valid date; never an error.
func Parse(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	s := normalizer.Clean(dateStr)

	for _, p := range patterns {
		m := p.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		rocYear, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		day, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}

		if rocYear < minROCYear || rocYear > maxROCYear {
			continue
		}
		if month < 1 || month > 12 {
			continue
		}
		if day < 1 || day > 31 {
			continue
		}

		year := rocYear + rocOffset
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes impossible dates (Feb 30 becomes Mar 2);
		// anything that moved was not a real calendar date.
		if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
			continue
		}
		return d, true
	}

	return time.Time{}, false
}

// FormatROC renders a Western date as the canonical ROC string, zero-padded
// month and day: 2025-11-07 → "114-11-07". The zero time formats to "".
func FormatROC(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", d.Year()-rocOffset, int(d.Month()), d.Day())
}

// Validate wraps Parse and additionally rejects dates later than today.
func Validate(dateStr string) (bool, string) {
	if dateStr == "" {
		return false, "Date string is empty"
	}

	d, ok := Parse(dateStr)
	if !ok {
		return false, fmt.Sprintf("Cannot parse date: %s", dateStr)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return false, fmt.Sprintf("Date is in the future: %s", d.Format("2006-01-02"))
	}

	return true, ""
}
