package models

import (
	"strings"
	"time"
)

const keyDateLayout = "Jan 2, 2006"

// KeyDates are the fixed promotional milestones of a month, formatted as
// display strings ("Jan 10, 2026") because that is how the plan document
// stores every date.
type KeyDates struct {
	Launch      string
	Prelaunched string
	AdsStart    string
	AdsEnd      string
}

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// MonthNames returns the twelve month names in calendar order.
func MonthNames() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}

// MonthKeyDates computes the milestone dates for a month: prelaunch on the
// 10th, ads from the 12th, launch on the 15th, ads through the last day.
// Unknown month names fall back to January.
func MonthKeyDates(monthName string, year int) KeyDates {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(monthName))]
	if !ok {
		m = time.January
	}
	day := func(d int) string {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC).Format(keyDateLayout)
	}
	lastDay := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC)
	return KeyDates{
		Prelaunched: day(10),
		AdsStart:    day(12),
		Launch:      day(15),
		AdsEnd:      lastDay.Format(keyDateLayout),
	}
}
