package mood

import (
	"strings"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

// constructionOdds is the chance of the construction-season theme firing on a
// qualifying summer day. Production behavior is intentionally probabilistic;
// the roll is injected so the cascade itself stays deterministic.
const constructionOdds = 0.10

// Decide maps a snapshot to exactly one theme id by walking a strict
// priority cascade and returning at the first matching rule. roll is a
// pre-sampled uniform draw in [0, 1) consumed only by the construction rule.
//
// The rule order is the central business rule of the whole system. Danger
// outranks respect, respect outranks operator whims, operator whims outrank
// holidays, and holidays outrank everything the sky is doing.
func Decide(snap *models.Snapshot, roll float64) themes.ID {
	w := snap.Weather
	tm := snap.Temporal
	so := snap.Social

	// Danger first.
	if w.WMOCode >= 95 {
		return themes.Bunker
	}
	if w.Smoke {
		return themes.Smoke
	}
	if w.Precip == models.PrecipIce {
		return themes.NorthWind
	}

	// Respect: blackout dates suppress every festive branch below.
	if tm.Blackout {
		return themes.NeutralRespectful
	}

	// Operator override.
	switch so.Override {
	case models.OverrideSomber:
		return themes.CozySomber
	case models.OverrideParty:
		return themes.ManicParty
	case models.OverrideCozy:
		return themes.HyggeMode
	case models.OverrideVictory:
		return themes.VictoryLap
	}

	// Named holidays. New Year flips from recovery to party at noon;
	// holidays with no recommended theme fall through to the weather.
	if h := tm.Holiday; h != nil {
		if strings.Contains(h.Name, "New Year") {
			if tm.Hour < 12 {
				return themes.HyggeMode
			}
			return themes.ManicParty
		}
		if h.Theme != "" {
			if _, ok := themes.Lookup(h.Theme); ok {
				return h.Theme
			}
		}
	}

	// Specific phenomena.
	if w.SunLie {
		return themes.SunDog
	}
	if w.ApparentTemp > 35 && w.Temp < 30 {
		return themes.MosquitoSwarm
	}
	if snap.Metrics.DeltaShock > 12 && w.Temp < 0 {
		return themes.FalseSpring // overnight relief from a deep freeze
	}
	if snap.Metrics.DeltaShock < -12 {
		return themes.DeepFreeze
	}

	// Social.
	if so.Outcome == models.OutcomeVictory {
		if w.Temp < 0 {
			return themes.VictoryCold
		}
		return themes.VictoryPatio
	}

	// The grind reuses the bunker visual: day N of a cold streak feels like
	// a siege even without a storm overhead.
	if snap.Grind.Active {
		return themes.Bunker
	}

	// Baseline weather.
	if tm.SeasonBias == models.BiasOptimistic && w.Temp > -5 && w.SnowDepthCm < 5 {
		return themes.FalseSpring
	}
	if snap.Metrics.Deviation < -10 && w.Temp < -25 {
		return themes.DeepFreeze
	}
	if w.WMOCode == 75 || (w.Precip == models.PrecipSnow && w.WindSpeed > 40) {
		return themes.WhiteOut
	}
	if w.Temp > 20 && w.Temp < 28 {
		return themes.PrairieGold
	}
	if w.Temp >= 0 && w.Temp <= 5 && (w.Precip != models.PrecipNone || w.SnowDepthCm > 0) {
		return themes.Slush
	}
	if tm.SeasonBias == models.BiasOptimistic &&
		((w.SnowDepthCm > 20 && w.Temp > 5) || (w.WMOCode >= 50 && tm.DayOfYear >= 90 && tm.DayOfYear <= 150)) {
		return themes.Flood
	}
	if isConstructionSeason(snap) && roll < constructionOdds {
		return themes.Construction
	}
	if m := monthOf(tm.DayOfYear); m == time.September || m == time.October {
		return themes.Autumn
	}

	return themes.HyggeMode
}

// isConstructionSeason reports a clear summer weekday warm enough for road
// crews.
func isConstructionSeason(snap *models.Snapshot) bool {
	m := monthOf(snap.Temporal.DayOfYear)
	if m < time.June || m > time.August {
		return false
	}
	if wd := snap.CreatedAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return snap.Weather.WMOCode <= 2 && snap.Weather.Temp > 10
}

// monthOf converts a day of year to its month, assuming a non-leap year. One
// day of drift in leap years is irrelevant at month granularity.
func monthOf(dayOfYear int) time.Month {
	if dayOfYear < 1 {
		dayOfYear = 1
	}
	if dayOfYear > 365 {
		dayOfYear = 365
	}
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, dayOfYear-1).Month()
}
