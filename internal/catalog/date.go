package catalog

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a Date at the precision it is known, e.g. "May 2, 2023",
// "May, 2023" or "2023", followed by any variant and matinee markers.
func FormatDate(d *Date) string {
	if d == nil || d.FullDate == "" {
		return ""
	}

	parts := strings.SplitN(d.FullDate, "-", 3)
	year := parts[0]

	var formatted string
	switch {
	case d.DayKnown:
		if t, err := time.Parse("2006-01-02", d.FullDate); err == nil {
			formatted = t.Format("January 2, 2006")
		} else {
			formatted = monthName(parts) + ", " + year
		}
	case d.MonthKnown:
		formatted = monthName(parts) + ", " + year
	default:
		formatted = year
	}

	if d.DateVariant != "" {
		formatted += " (" + d.DateVariant + ")"
	}
	if d.Time == "matinee" {
		formatted += " (matinee)"
	}
	return formatted
}

// monthName falls back to January when the month segment is missing or bad.
func monthName(parts []string) string {
	if len(parts) < 2 {
		return time.January.String()
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.January.String()
	}
	return time.Month(month).String()
}
