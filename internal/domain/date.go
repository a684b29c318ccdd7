package domain

import "time"

const (
	inputDateLayout = "2006-01-02"
	logDateLayout   = "Mon Jan 02 2006"
)

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(inputDateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

// FormatLogDate renders a date in the short calendar form used by every
// response, e.g. "Mon Jan 01 2024".
func FormatLogDate(date time.Time) string {
	return date.UTC().Format(logDateLayout)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
