package mood

import (
	"context"
	"log"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/perogyhouse/moodengine/internal/holidays"
	"github.com/perogyhouse/moodengine/internal/metrics"
	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

// WeatherSource fetches current conditions. Implementations degrade to a safe
// default observation on failure; the returned error is advisory, for logs
// and metrics only.
type WeatherSource interface {
	Current(ctx context.Context) (models.WeatherObservation, error)
}

// AirQualitySource fetches the current US AQI, defaulting to 0 on failure.
type AirQualitySource interface {
	CurrentAQI(ctx context.Context) (int, error)
}

// SportsSource resolves the tracked team's most relevant recent outcome,
// defaulting to NONE on failure.
type SportsSource interface {
	Outcome(ctx context.Context, now time.Time) (models.SportsOutcome, error)
}

// OverrideSource fetches the operator override row, defaulting to NONE.
type OverrideSource interface {
	Current(ctx context.Context, now time.Time) (models.OverrideMode, string, error)
}

// Recorder persists a mood record after each rebuild. Optional.
type Recorder interface {
	RecordMood(rec models.MoodRecord) error
}

// Options tweak a single snapshot request. Either field forces a fresh
// compute that bypasses the cache and is not written back to it.
type Options struct {
	// ForceTheme skips derivation entirely and resolves the given theme id.
	ForceTheme themes.ID
	// MockTemp substitutes the fetched temperature before derivation.
	MockTemp *float64
}

func (o Options) bypassCache() bool {
	return o.ForceTheme != "" || o.MockTemp != nil
}

// Assembler builds context snapshots: it fans out to the signal fetchers and
// the holiday calendar, computes derived metrics, runs the decision cascade,
// and memoizes the result.
type Assembler struct {
	weather  WeatherSource
	air      AirQualitySource
	sports   SportsSource
	override OverrideSource
	recorder Recorder

	cache Cache
	group singleflight.Group
	loc   *time.Location
	now   func() time.Time
	roll  func() float64

	// envOverride comes from process configuration and loses to any
	// CSV-sourced override.
	envOverride models.OverrideMode
}

// Config wires an Assembler.
type Config struct {
	Weather     WeatherSource
	Air         AirQualitySource
	Sports      SportsSource
	Override    OverrideSource
	Recorder    Recorder
	Cache       Cache
	Location    *time.Location
	EnvOverride models.OverrideMode

	// Now and Roll are injectable for tests; nil means the real clock and
	// a shared PRNG.
	Now  func() time.Time
	Roll func() float64
}

func NewAssembler(cfg Config) *Assembler {
	a := &Assembler{
		weather:     cfg.Weather,
		air:         cfg.Air,
		sports:      cfg.Sports,
		override:    cfg.Override,
		recorder:    cfg.Recorder,
		cache:       cfg.Cache,
		loc:         cfg.Location,
		now:         cfg.Now,
		roll:        cfg.Roll,
		envOverride: cfg.EnvOverride,
	}
	if a.cache == nil {
		a.cache = NewCache(DefaultTTL)
	}
	if a.loc == nil {
		a.loc = time.UTC
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.roll == nil {
		a.roll = rand.Float64
	}
	if a.envOverride == "" {
		a.envOverride = models.OverrideNone
	}
	return a
}

// Current returns the snapshot for this cache cycle, rebuilding on a miss.
// Concurrent callers during a rebuild coalesce onto a single in-flight
// build. Requests carrying explicit overrides always compute fresh and never
// touch the cache.
func (a *Assembler) Current(ctx context.Context, opts Options) *models.Snapshot {
	if opts.bypassCache() {
		return a.build(ctx, opts)
	}

	now := a.now().In(a.loc)
	if snap, ok := a.cache.Get(now); ok {
		metrics.CacheHits.Inc()
		return snap
	}
	metrics.CacheMisses.Inc()

	v, _, _ := a.group.Do("snapshot", func() (interface{}, error) {
		// Re-check: a racing caller may have already rebuilt.
		if snap, ok := a.cache.Get(a.now().In(a.loc)); ok {
			return snap, nil
		}
		snap := a.build(ctx, Options{})
		a.cache.Put(snap, snap.CreatedAt)
		a.record(snap)
		return snap, nil
	})
	return v.(*models.Snapshot)
}

// build assembles a fresh snapshot. It never fails: every fetcher swallows
// its own errors into a documented default.
func (a *Assembler) build(ctx context.Context, opts Options) *models.Snapshot {
	metrics.Rebuilds.Inc()
	now := a.now().In(a.loc)

	var (
		obs      models.WeatherObservation
		aqi      int
		outcome  models.SportsOutcome
		override models.OverrideMode
		message  string
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		var err error
		if obs, err = a.weather.Current(ctx); err != nil {
			log.Printf("assembler: fetch weather: %v", err)
		}
	}()

	aqiDone := make(chan struct{})
	go func() {
		defer close(aqiDone)
		var err error
		if aqi, err = a.air.CurrentAQI(ctx); err != nil {
			log.Printf("assembler: fetch air quality: %v", err)
		}
	}()

	sportsDone := make(chan struct{})
	go func() {
		defer close(sportsDone)
		var err error
		if outcome, err = a.sports.Outcome(ctx, now); err != nil {
			log.Printf("assembler: fetch sports outcome: %v", err)
		}
	}()

	overrideDone := make(chan struct{})
	go func() {
		defer close(overrideDone)
		var err error
		if override, message, err = a.override.Current(ctx, now); err != nil {
			log.Printf("assembler: fetch override: %v", err)
		}
	}()

	<-done
	<-aqiDone
	<-sportsDone
	<-overrideDone

	if opts.MockTemp != nil {
		obs.Temp = *opts.MockTemp
		obs.ApparentTemp = *opts.MockTemp
	}

	if override == models.OverrideNone {
		override = a.envOverride
	}

	holiday := holidays.Resolve(now)
	blackout := holiday != nil && holiday.Blackout

	snap := &models.Snapshot{
		Weather: models.Weather{
			Temp:         obs.Temp,
			ApparentTemp: obs.ApparentTemp,
			WindSpeed:    obs.WindSpeed,
			WMOCode:      obs.WMOCode,
			CloudCover:   obs.CloudCover,
			SnowDepthCm:  obs.SnowDepthCm,
			AQI:          aqi,
			IsDay:        obs.IsDay,
			Precip:       ClassifyPrecip(obs.WMOCode),
			Viscosity:    Viscosity(obs.Temp),
			WindForce:    WindForce(obs.WindSpeed),
			SunLie:       SunLie(obs.Temp, obs.CloudCover, obs.IsDay),
			Smoke:        aqi > smokeAQI,
		},
		Temporal: models.Temporal{
			DayOfYear:  now.YearDay(),
			Hour:       now.Hour(),
			SeasonBias: SeasonBiasFor(now.Month()),
			Blackout:   blackout,
			Holiday:    holiday,
		},
		Social: models.Social{
			Outcome:         outcome,
			Override:        override,
			OverrideMessage: message,
		},
		Grind: ColdStreak(obs.DailyMinima),
		Metrics: models.Metrics{
			DeltaShock: obs.DeltaShock,
			Deviation:  Deviation(obs.Temp, now.YearDay()),
			MentalTemp: MentalTemp(obs.Temp, outcome),
		},
		CreatedAt: now,
	}

	if opts.ForceTheme != "" {
		snap.Theme = themes.Get(opts.ForceTheme)
	} else {
		snap.Theme = themes.Get(Decide(snap, a.roll()))
	}
	metrics.SetCurrentTheme(string(snap.Theme.ID))

	return snap
}

func (a *Assembler) record(snap *models.Snapshot) {
	if a.recorder == nil {
		return
	}
	rec := models.MoodRecord{
		CreatedAt:    snap.CreatedAt,
		ThemeID:      snap.Theme.ID,
		Label:        snap.Theme.Label,
		Temp:         snap.Weather.Temp,
		ApparentTemp: snap.Weather.ApparentTemp,
		WindSpeed:    snap.Weather.WindSpeed,
		WMOCode:      snap.Weather.WMOCode,
		AQI:          snap.Weather.AQI,
		Outcome:      snap.Social.Outcome,
		Override:     snap.Social.Override,
		Blackout:     snap.Temporal.Blackout,
		DeltaShock:   snap.Metrics.DeltaShock,
		Deviation:    snap.Metrics.Deviation,
		MentalTemp:   snap.Metrics.MentalTemp,
		GrindDays:    snap.Grind.Days,
	}
	if snap.Temporal.Holiday != nil {
		rec.HolidayName = snap.Temporal.Holiday.Name
	}
	if err := a.recorder.RecordMood(rec); err != nil {
		log.Printf("assembler: record mood: %v", err)
	}
}
