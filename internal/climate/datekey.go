package climate

import (
	"regexp"
	"strconv"
	"time"
)

const (
	dateOnlyLayout  = "2006-01-02"
	truncatedLayout = "2006-01-02 15:04:05"
)

// isoLayouts are the ISO-8601 shapes accepted when the input is not a bare date.
// Fractional seconds are optional in every layout that lists them. Offsets may be
// written with or without a colon.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02 15Z07:00",
	"2006-01-02T15",
	"2006-01-02 15",
	"20060102T150405.999999999Z07:00",
	"20060102T150405.999999999",
	"20060102",
}

// weekDatePattern matches ISO week dates: 2025-W40-7, 2025W407, 2025-W40.
var weekDatePattern = regexp.MustCompile(`^(\d{4})-?W(\d{2})(?:-?([1-7]))?$`)

// ExtractDayMonth reads the calendar day and month out of a date string.
// Day and month come from the string's own wall clock; offsets are not applied.
func ExtractDayMonth(s string) (day, month int, err error) {
	t, err := parseQueryDate(s)
	if err != nil {
		return 0, 0, err
	}
	return t.Day(), int(t.Month()), nil
}

func parseQueryDate(s string) (time.Time, error) {
	if t, ok := parseWeekDate(s); ok {
		return t, nil
	}

	if len(s) == len(dateOnlyLayout) {
		if t, err := time.Parse(dateOnlyLayout, s); err == nil {
			return t, nil
		}
	} else {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}

	prefix := s
	if len(prefix) > len(truncatedLayout) {
		prefix = prefix[:len(truncatedLayout)]
	}
	if t, err := time.Parse(truncatedLayout, prefix); err == nil {
		return t, nil
	}

	return time.Time{}, &DateFormatError{Value: s}
}

// parseWeekDate resolves an ISO week date to its calendar date. A missing weekday
// means Monday.
func parseWeekDate(s string) (time.Time, bool) {
	m := weekDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	weekday := 1
	if m[3] != "" {
		weekday, _ = strconv.Atoi(m[3])
	}

	// Week 1 is the week holding 4 January.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	t := monday.AddDate(0, 0, (week-1)*7+weekday-1)

	if y, w := t.ISOWeek(); y != year || w != week {
		return time.Time{}, false
	}
	return t, true
}
