package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	dbDateTimeLayout  = "2006-01-02 15:04:05"
	isoDateTimeLayout = "2006-01-02T15:04:05"
	dateOnlyLayout    = "2006-01-02"
	displayDateLayout = "02-01-2006"
	monthLayout       = "2006-01"
)

// DefaultTimezone is the zone the dashboard renders timestamps in.
const DefaultTimezone = "Asia/Kolkata"

// DefaultDateTimeLayout renders timestamps the way an en-IN browser locale does.
const DefaultDateTimeLayout = "2/1/2006, 3:04:05 pm"

// LoadLocation returns the named location, falling back to a fixed IST zone
// when the location database is unavailable.
func LoadLocation(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == DefaultTimezone {
			return time.FixedZone("IST", 5*60*60+30*60)
		}
		return time.UTC
	}
	return loc
}

// ParseRecordTime parses the date and timestamp strings the upstream emits.
// Date-only values are calendar dates in loc; zoned values are converted to loc.
func ParseRecordTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC1123, time.RFC1123Z} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.In(loc), nil
		}
	}

	for _, layout := range []string{
		dateOnlyLayout,
		isoDateTimeLayout,
		isoDateTimeLayout + ".999999999",
		dbDateTimeLayout,
	} {
		if ts, err := time.ParseInLocation(layout, value, loc); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format: %s", value)
}

// FormatDisplayDate renders value as DD-MM-YYYY, or "" when it cannot be read.
// A YYYY-MM-DD shaped value that fails calendar validation is reordered as-is.
func FormatDisplayDate(value string, loc *time.Location) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if ts, err := ParseRecordTime(value, loc); err == nil {
		return ts.Format(displayDateLayout)
	}
	parts := strings.Split(value, "-")
	if len(parts) == 3 && len(parts[0]) == 4 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return ""
}

// FormatDisplayDateTime renders a timestamp with layout in loc, or "" when it cannot be read.
func FormatDisplayDateTime(value string, loc *time.Location, layout string) string {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}
	ts, err := ParseRecordTime(value, loc)
	if err != nil {
		return ""
	}
	return ts.Format(layout)
}

// MonthKey returns the YYYY-MM bucket of value.
func MonthKey(value string, loc *time.Location) (string, bool) {
	ts, err := ParseRecordTime(value, loc)
	if err != nil {
		return "", false
	}
	return ts.Format(monthLayout), true
}
