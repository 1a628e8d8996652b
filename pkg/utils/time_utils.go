package utils

import "time"

// BirthDateLayout is the mm/dd/yyyy form accepted on registration.
const BirthDateLayout = "01/02/2006"

const isoDateTime = "2006-01-02T15:04:05"

func ParseBirthDate(raw string) (time.Time, error) {
	return time.Parse(BirthDateLayout, raw)
}

func FormatISODateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoDateTime)
}
