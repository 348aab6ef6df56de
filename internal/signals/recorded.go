package signals

import (
	"context"
	"log"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

// RunStore persists fetch attempts. Implemented by the sqlite store.
type RunStore interface {
	StartFetchRun(source string) (int64, error)
	CompleteFetchRun(id int64, fetchErr error) error
}

// recordRun writes the fetch-run bracket around a fetch. Store failures are
// logged and otherwise ignored; bookkeeping never blocks a fetch.
func recordRun(runs RunStore, source string, fetchErr error) {
	id, err := runs.StartFetchRun(source)
	if err != nil {
		log.Printf("signals: start fetch run %s: %v", source, err)
		return
	}
	if err := runs.CompleteFetchRun(id, fetchErr); err != nil {
		log.Printf("signals: complete fetch run %s: %v", source, err)
	}
}

// RecordedWeather wraps a weather source with fetch-run persistence.
type RecordedWeather struct {
	Source interface {
		Current(ctx context.Context) (models.WeatherObservation, error)
	}
	Runs RunStore
}

func (r RecordedWeather) Current(ctx context.Context) (models.WeatherObservation, error) {
	obs, err := r.Source.Current(ctx)
	recordRun(r.Runs, "weather", err)
	return obs, err
}

// RecordedAirQuality wraps an air quality source with fetch-run persistence.
type RecordedAirQuality struct {
	Source interface {
		CurrentAQI(ctx context.Context) (int, error)
	}
	Runs RunStore
}

func (r RecordedAirQuality) CurrentAQI(ctx context.Context) (int, error) {
	aqi, err := r.Source.CurrentAQI(ctx)
	recordRun(r.Runs, "airquality", err)
	return aqi, err
}

// RecordedSports wraps a sports source with fetch-run persistence.
type RecordedSports struct {
	Source interface {
		Outcome(ctx context.Context, now time.Time) (models.SportsOutcome, error)
	}
	Runs RunStore
}

func (r RecordedSports) Outcome(ctx context.Context, now time.Time) (models.SportsOutcome, error) {
	outcome, err := r.Source.Outcome(ctx, now)
	recordRun(r.Runs, "sports", err)
	return outcome, err
}

// RecordedOverride wraps an override source with fetch-run persistence.
type RecordedOverride struct {
	Source interface {
		Current(ctx context.Context, now time.Time) (models.OverrideMode, string, error)
	}
	Runs RunStore
}

func (r RecordedOverride) Current(ctx context.Context, now time.Time) (models.OverrideMode, string, error) {
	mode, message, err := r.Source.Current(ctx, now)
	recordRun(r.Runs, "override", err)
	return mode, message, err
}
