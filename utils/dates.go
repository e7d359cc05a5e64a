package utils

import (
	"regexp"
	"strconv"
	"time"
)

// All date handling is deliberately local wall-clock time with no zone
// suffix: "today" and "this week" are defined relative to the machine's
// local time, consistently across formatting, parsing and aggregation.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var dateOnlyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FormatLocalDate renders a zero-padded local YYYY-MM-DD date.
func FormatLocalDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatLocalDateTime renders a zero-padded local "YYYY-MM-DD HH:MM:SS".
func FormatLocalDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// ParseDateOnly parses a strict YYYY-MM-DD string into a local date. The
// calendar fields are round-tripped so impossible dates like 2024-02-30 are
// rejected rather than normalized.
func ParseDateOnly(value string) (time.Time, bool) {
	match := dateOnlyPattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])
	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if parsed.Year() != year || int(parsed.Month()) != month || parsed.Day() != day {
		return time.Time{}, false
	}
	return parsed, true
}

// BuildRecordTimestamp merges a YYYY-MM-DD date with the current wall-clock
// time of day, producing a full local date-time string. Used to backdate a
// record to a chosen day while keeping a plausible "time eaten".
func BuildRecordTimestamp(recordDate string) (string, bool) {
	date, ok := ParseDateOnly(recordDate)
	if !ok {
		return "", false
	}
	now := time.Now()
	merged := time.Date(date.Year(), date.Month(), date.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.Local)
	return FormatLocalDateTime(merged), true
}

// WeekRange is an inclusive Monday-to-Sunday span of local dates.
type WeekRange struct {
	Start string
	End   string
}

// WeekRangeFor returns the ISO week (Monday start) containing date.
func WeekRangeFor(date time.Time) WeekRange {
	offset := int(date.Weekday())
	if offset == 0 {
		offset = 7
	}
	start := date.AddDate(0, 0, -(offset - 1))
	end := start.AddDate(0, 0, 6)
	return WeekRange{Start: FormatLocalDate(start), End: FormatLocalDate(end)}
}
