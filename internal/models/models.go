package models

import (
	"time"

	"github.com/perogyhouse/moodengine/internal/themes"
)

// SportsOutcome is the tracked team's most relevant recent result.
type SportsOutcome string

const (
	OutcomeVictory SportsOutcome = "VICTORY"
	OutcomeDefeat  SportsOutcome = "DEFEAT"
	OutcomeGameDay SportsOutcome = "GAME_DAY"
	OutcomeNone    SportsOutcome = "NONE"
)

// OverrideMode is an operator-forced mood.
type OverrideMode string

const (
	OverrideNone    OverrideMode = "NONE"
	OverrideSomber  OverrideMode = "FORCE_SOMBER"
	OverrideParty   OverrideMode = "FORCE_PARTY"
	OverrideCozy    OverrideMode = "FORCE_COZY"
	OverrideVictory OverrideMode = "FORCE_VICTORY"
)

// ParseOverrideMode maps a raw mode string to a known override, treating
// anything unrecognized as NONE.
func ParseOverrideMode(s string) OverrideMode {
	switch OverrideMode(s) {
	case OverrideSomber, OverrideParty, OverrideCozy, OverrideVictory:
		return OverrideMode(s)
	default:
		return OverrideNone
	}
}

// PrecipClass is the precipitation category derived from the WMO weather code.
type PrecipClass string

const (
	PrecipNone PrecipClass = "none"
	PrecipSnow PrecipClass = "snow"
	PrecipRain PrecipClass = "rain"
	PrecipIce  PrecipClass = "ice"
)

// SeasonBias is the binary mood lean derived from the month: late winter and
// spring read as hopeful, the back half of the year does not.
type SeasonBias string

const (
	BiasOptimistic  SeasonBias = "optimistic"
	BiasPessimistic SeasonBias = "pessimistic"
)

// WeatherObservation is the raw-plus-derived result of one weather fetch.
// Every field has a documented safe default so a failed fetch still yields a
// usable observation.
type WeatherObservation struct {
	Temp         float64   `json:"temp"`
	ApparentTemp float64   `json:"apparent_temp"`
	WindSpeed    float64   `json:"wind_speed"` // km/h
	WMOCode      int       `json:"wmo_code"`
	CloudCover   float64   `json:"cloud_cover"`   // percent
	SnowDepthCm  float64   `json:"snow_depth_cm"` // provider reports metres; stored as cm
	IsDay        bool      `json:"is_day"`
	DeltaShock   float64   `json:"delta_shock"` // temp now minus same hour yesterday
	DailyMinima  []float64 `json:"daily_minima,omitempty"`
}

// Weather is the fully derived weather block of a snapshot.
type Weather struct {
	Temp         float64     `json:"temp"`
	ApparentTemp float64     `json:"apparent_temp"`
	WindSpeed    float64     `json:"wind_speed"`
	WMOCode      int         `json:"wmo_code"`
	CloudCover   float64     `json:"cloud_cover"`
	SnowDepthCm  float64     `json:"snow_depth_cm"`
	AQI          int         `json:"aqi"`
	IsDay        bool        `json:"is_day"`
	Precip       PrecipClass `json:"precip"`
	Viscosity    float64     `json:"viscosity"`
	WindForce    float64     `json:"wind_force"`
	SunLie       bool        `json:"sun_lie"`
	Smoke        bool        `json:"smoke"`
}

// Holiday is a resolved calendar record.
type Holiday struct {
	Name     string    `json:"name"`
	Theme    themes.ID `json:"theme,omitempty"` // empty means no recommended theme
	Blackout bool      `json:"blackout"`
}

// Temporal is the calendar block of a snapshot.
type Temporal struct {
	DayOfYear  int        `json:"day_of_year"`
	Hour       int        `json:"hour"`
	SeasonBias SeasonBias `json:"season_bias"`
	Blackout   bool       `json:"blackout"`
	Holiday    *Holiday   `json:"holiday,omitempty"`
}

// Social is the sports-and-operator block of a snapshot.
type Social struct {
	Outcome         SportsOutcome `json:"outcome"`
	Override        OverrideMode  `json:"override"`
	OverrideMessage string        `json:"override_message,omitempty"`
}

// Grind tracks a sustained multi-day extreme-cold streak.
type Grind struct {
	Active bool `json:"active"`
	Days   int  `json:"days"`
}

// Metrics are the derived psycho-physical values.
type Metrics struct {
	DeltaShock float64 `json:"delta_shock"`
	Deviation  float64 `json:"deviation"`
	MentalTemp float64 `json:"mental_temp"`
}

// Snapshot is the immutable context assembled once per cache cycle. The theme
// is computed last from the rest of the snapshot and is never an input to its
// own derivation.
type Snapshot struct {
	Weather   Weather       `json:"weather"`
	Temporal  Temporal      `json:"temporal"`
	Social    Social        `json:"social"`
	Grind     Grind         `json:"grind"`
	Metrics   Metrics       `json:"metrics"`
	Theme     themes.Config `json:"theme"`
	CreatedAt time.Time     `json:"created_at"`
}

// MoodRecord is the row written to the mood log on every rebuild.
type MoodRecord struct {
	ID           int64
	CreatedAt    time.Time
	ThemeID      themes.ID
	Label        string
	Temp         float64
	ApparentTemp float64
	WindSpeed    float64
	WMOCode      int
	AQI          int
	Outcome      SportsOutcome
	Override     OverrideMode
	HolidayName  string
	Blackout     bool
	DeltaShock   float64
	Deviation    float64
	MentalTemp   float64
	GrindDays    int
}

// FetchRun records one upstream fetch attempt for observability.
type FetchRun struct {
	ID          int64
	Source      string
	StartedAt   time.Time
	CompletedAt time.Time
	Success     bool
	Error       string
}
