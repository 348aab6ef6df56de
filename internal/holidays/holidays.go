// Package holidays resolves a calendar date to the local holiday or
// observance it falls on, if any. Blackout dates are civic observances that
// suppress all festive theming downstream.
package holidays

import (
	"fmt"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

type fixedHoliday struct {
	Name     string
	Theme    themes.ID // empty lets the weather decide
	Blackout bool
}

// Fixed-date holidays keyed by "MM-DD".
var fixedHolidays = map[string]fixedHoliday{
	// Blackout dates: no fun themes, full stop.
	"11-11": {Name: "Remembrance Day", Theme: themes.NeutralRespectful, Blackout: true},
	"09-30": {Name: "Truth & Reconciliation Day", Theme: themes.NeutralRespectful, Blackout: true},

	"12-24": {Name: "Christmas Eve", Theme: themes.CozySomber},
	"12-25": {Name: "Christmas Day", Theme: themes.CozySomber},
	"12-26": {Name: "Boxing Day", Theme: themes.CozySomber},
	"12-31": {Name: "New Year's Eve", Theme: themes.ManicParty},
	"01-01": {Name: "New Year's Day", Theme: themes.HyggeMode},
	"02-14": {Name: "Valentine's Day"}, // marked as a holiday, weather decides
	"10-31": {Name: "Halloween", Theme: themes.Halloween},
	"07-01": {Name: "Canada Day", Theme: themes.PrairieGold},
	"02-15": {Name: "Louis Riel Day", Theme: themes.HyggeMode},
}

type holidayRange struct {
	Name       string
	Theme      themes.ID
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// Week-long local events, inclusive on both ends. Ranges may span a month
// boundary.
var holidayRanges = []holidayRange{
	{Name: "Festival du Voyageur", Theme: themes.CozySomber, StartMonth: time.February, StartDay: 14, EndMonth: time.February, EndDay: 23},
	{Name: "Fringe Festival", Theme: themes.ManicParty, StartMonth: time.July, StartDay: 15, EndMonth: time.July, EndDay: 27},
	{Name: "Winnipeg Folk Festival", Theme: themes.PrairieGold, StartMonth: time.July, StartDay: 8, EndMonth: time.July, EndDay: 11},
}

// thanksgivingDay returns the day-of-month of Thanksgiving (the second Monday
// of October) for the given year.
func thanksgivingDay(year int) int {
	oct1 := time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
	offset := (8 - int(oct1.Weekday())) % 7 // days from Oct 1 to the first Monday
	return 1 + offset + 7
}

func inRange(m time.Month, day int, r holidayRange) bool {
	if r.StartMonth == r.EndMonth {
		return m == r.StartMonth && day >= r.StartDay && day <= r.EndDay
	}
	if m > r.StartMonth && m < r.EndMonth {
		return true
	}
	if m == r.StartMonth && day >= r.StartDay {
		return true
	}
	if m == r.EndMonth && day <= r.EndDay {
		return true
	}
	return false
}

// Resolve maps a date to its holiday record. Lookup order: computed floating
// holidays, then the fixed-date table, then ranges. Returns nil when the date
// is ordinary.
func Resolve(date time.Time) *models.Holiday {
	if date.Month() == time.October && date.Day() == thanksgivingDay(date.Year()) {
		return &models.Holiday{Name: "Thanksgiving", Theme: themes.Autumn}
	}

	key := fmt.Sprintf("%02d-%02d", int(date.Month()), date.Day())
	if h, ok := fixedHolidays[key]; ok {
		return &models.Holiday{Name: h.Name, Theme: h.Theme, Blackout: h.Blackout}
	}

	for _, r := range holidayRanges {
		if inRange(date.Month(), date.Day(), r) {
			return &models.Holiday{Name: r.Name, Theme: r.Theme}
		}
	}

	return nil
}
