package utils

import (
	"regexp"
	"strconv"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the zone departure timestamps are converted to
	DefaultTimezone = "Europe/Berlin"

	// DateLayout is the layout of validity dates in system info responses
	DateLayout = "2006-01-02"
	// TimestampLayout is the layout of stop event timestamps, e.g. 2024-11-27T21:16:00Z or 2024-11-27T22:16:00+0100
	TimestampLayout = "2006-01-02T15:04:05Z0700"

	// ParamDateLayout and ParamTimeLayout are the layouts of the itdDate and itdTime query parameters
	ParamDateLayout = "20060102"
	ParamTimeLayout = "1504"
)

var (
	dateTimePattern = regexp.MustCompile(`^(\d{8}) (\d{2}:\d{2})$`)
	datePattern     = regexp.MustCompile(`^\d{4}(\d{2})(\d{2})$`)
	timePattern     = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// IsDateTime reports whether s is "YYYYMMDD HH:MM" with a valid date and time part
func IsDateTime(s string) bool {
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return IsDate(m[1]) && IsTime(m[2])
}

// IsDate reports whether s is "YYYYMMDD" with month 1-12 and day 1-31.
// Days are not checked against the length of the month.
func IsDate(s string) bool {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// IsTime reports whether s is "HH:MM" with hour 0-23 and minute 0-59
func IsTime(s string) bool {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours >= 0 && hours < 24 && minutes >= 0 && minutes < 60
}

// SplitDateTime splits "YYYYMMDD HH:MM" into the itdDate and itdTime values ("YYYYMMDD", "HHMM")
func SplitDateTime(s string) (string, string, bool) {
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], StripColon(m[2]), true
}

// StripColon turns "HH:MM" into "HHMM"
func StripColon(s string) string {
	if len(s) == 5 && s[2] == ':' {
		return s[:2] + s[3:]
	}
	return s
}

// FormatDateTime renders t as "YYYYMMDD HH:MM", the input accepted by IsDateTime
func FormatDateTime(t time.Time) string {
	return t.Format("20060102 15:04")
}

// ParseDate parses a "YYYY-MM-DD" date at midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDateTime parses a stop event timestamp and converts it to loc
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = DefaultLocation()
	}
	return t.In(loc), nil
}

// DefaultLocation returns the DefaultTimezone location, or UTC if it cannot be loaded
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
