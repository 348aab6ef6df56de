// Package mood derives the site's visual mood from an assembled context
// snapshot: pure metric functions, the priority cascade, and the assembler
// that ties the signal fetchers together behind a TTL cache.
package mood

import (
	"math"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

const (
	// coldStreakThreshold is the daily minimum below which a day counts
	// toward the grind.
	coldStreakThreshold = -20.0
	// coldStreakMinDays is how many consecutive recent days it takes for the
	// grind to be considered active.
	coldStreakMinDays = 3

	// sunLieTemp is the clear-sky temperature below which bright daylight is
	// a lie. Earlier revisions disagreed between -15 and -20; both shipped
	// engines used -20, so -20 it is.
	sunLieTemp = -20.0

	// smokeAQI is the US AQI above which the sky reads as wildfire smoke.
	smokeAQI = 150
)

// Viscosity maps temperature to a sluggishness factor for CSS transitions:
// -30C feels like 2.5s sludge, +35C like a 0.8s snap.
func Viscosity(temp float64) float64 {
	var v float64
	switch {
	case temp < -20:
		v = 2.5
	case temp > 30:
		v = 0.8
	default:
		v = 1 + (20-temp)*0.03
	}
	return math.Min(math.Max(v, 0.8), 2.5)
}

// WindForce normalizes wind speed to [0, 1], saturating at 50 km/h.
func WindForce(windSpeed float64) float64 {
	return math.Min(windSpeed/50, 1)
}

// SeasonalNormal approximates the climatological mean temperature for a day
// of year with a cosine: trough of about -13C near day 15, peak of about
// +26C near day 196.
func SeasonalNormal(dayOfYear int) float64 {
	const (
		midpoint   = 6.5
		amplitude  = 19.5
		phaseShift = 15
	)
	return midpoint - amplitude*math.Cos(2*math.Pi*float64(dayOfYear-phaseShift)/365)
}

// Deviation is how far the actual temperature sits from the seasonal normal.
func Deviation(temp float64, dayOfYear int) float64 {
	return temp - SeasonalNormal(dayOfYear)
}

// ColdStreak inspects recent daily minima, most recent last. The streak is
// active when the last coldStreakMinDays minima are all below the threshold;
// the day count tallies qualifying days across the whole window.
func ColdStreak(dailyMinima []float64) models.Grind {
	var g models.Grind
	for _, min := range dailyMinima {
		if min < coldStreakThreshold {
			g.Days++
		}
	}
	if len(dailyMinima) < coldStreakMinDays {
		return g
	}
	g.Active = true
	for _, min := range dailyMinima[len(dailyMinima)-coldStreakMinDays:] {
		if min >= coldStreakThreshold {
			g.Active = false
			break
		}
	}
	return g
}

// MentalTemp nudges the actual temperature by the social outcome: a win adds
// ten degrees of warmth, a loss takes five away.
func MentalTemp(temp float64, outcome models.SportsOutcome) float64 {
	switch outcome {
	case models.OutcomeVictory:
		return temp + 10
	case models.OutcomeDefeat:
		return temp - 5
	default:
		return temp
	}
}

// ClassifyPrecip maps a WMO weather code to a precipitation class. Freezing
// drizzle and freezing rain codes take precedence over the broad rain bands.
func ClassifyPrecip(wmoCode int) models.PrecipClass {
	switch wmoCode {
	case 56, 57, 66, 67:
		return models.PrecipIce
	}
	switch {
	case wmoCode >= 70 && wmoCode <= 79:
		return models.PrecipSnow
	case wmoCode >= 85 && wmoCode <= 86:
		return models.PrecipSnow
	case wmoCode >= 50 && wmoCode <= 69:
		return models.PrecipRain
	case wmoCode >= 80 && wmoCode <= 82:
		return models.PrecipRain
	}
	return models.PrecipNone
}

// SunLie reports the beautiful-lie condition: clear sky, brutal cold,
// daylight.
func SunLie(temp, cloudCover float64, isDay bool) bool {
	return temp < sunLieTemp && cloudCover < 20 && isDay
}

// SeasonBiasFor maps a month to the binary season bias: March through May
// read as optimistic, everything else as pessimistic.
func SeasonBiasFor(month time.Month) models.SeasonBias {
	if month >= time.March && month <= time.May {
		return models.BiasOptimistic
	}
	return models.BiasPessimistic
}
