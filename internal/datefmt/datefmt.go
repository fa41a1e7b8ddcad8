// Package datefmt renders the ISO-8601 timestamps stored on users for
// display.
package datefmt

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

func parse(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	return t, err == nil
}

// FormatDate renders s as "January 2, 2006".
func FormatDate(s string) string {
	t, ok := parse(s)
	if !ok {
		return "Invalid date"
	}
	return t.Format("January 2, 2006")
}

// FormatRelative describes how long before now s was, in whole days,
// 30-day months and 365-day years. Timestamps in the future count as today.
func FormatRelative(s string, now time.Time) string {
	t, ok := parse(s)
	if !ok {
		return "Unknown"
	}

	days := int(now.Sub(t) / day)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}

// MemberSince renders "Member since January 2006".
func MemberSince(s string) string {
	t, ok := parse(s)
	if !ok {
		return "Member since Unknown"
	}
	return "Member since " + t.Format("January 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
