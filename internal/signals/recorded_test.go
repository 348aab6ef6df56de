package signals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
)

type memRuns struct {
	started   []string
	completed map[int64]error
}

func newMemRuns() *memRuns {
	return &memRuns{completed: map[int64]error{}}
}

func (m *memRuns) StartFetchRun(source string) (int64, error) {
	m.started = append(m.started, source)
	return int64(len(m.started)), nil
}

func (m *memRuns) CompleteFetchRun(id int64, fetchErr error) error {
	m.completed[id] = fetchErr
	return nil
}

type staticWeather struct {
	obs models.WeatherObservation
	err error
}

func (s staticWeather) Current(ctx context.Context) (models.WeatherObservation, error) {
	return s.obs, s.err
}

func TestRecordedWeather(t *testing.T) {
	t.Parallel()

	runs := newMemRuns()
	want := models.WeatherObservation{Temp: -3}
	rw := RecordedWeather{Source: staticWeather{obs: want}, Runs: runs}

	obs, err := rw.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if obs.Temp != -3 {
		t.Errorf("Temp = %v, want -3", obs.Temp)
	}
	if len(runs.started) != 1 || runs.started[0] != "weather" {
		t.Errorf("started = %v, want [weather]", runs.started)
	}
	if runs.completed[1] != nil {
		t.Errorf("run completed with error %v, want nil", runs.completed[1])
	}
}

func TestRecordedWeatherFailure(t *testing.T) {
	t.Parallel()

	runs := newMemRuns()
	fetchErr := errors.New("upstream down")
	rw := RecordedWeather{Source: staticWeather{err: fetchErr}, Runs: runs}

	if _, err := rw.Current(context.Background()); err == nil {
		t.Fatal("Current: want error")
	}
	if runs.completed[1] != fetchErr {
		t.Errorf("run completed with %v, want fetch error", runs.completed[1])
	}
}

type staticSports struct{ outcome models.SportsOutcome }

func (s staticSports) Outcome(ctx context.Context, now time.Time) (models.SportsOutcome, error) {
	return s.outcome, nil
}

func TestRecordedSports(t *testing.T) {
	t.Parallel()

	runs := newMemRuns()
	rs := RecordedSports{Source: staticSports{outcome: models.OutcomeVictory}, Runs: runs}

	outcome, err := rs.Outcome(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	if outcome != models.OutcomeVictory {
		t.Errorf("Outcome = %q, want VICTORY", outcome)
	}
	if len(runs.started) != 1 || runs.started[0] != "sports" {
		t.Errorf("started = %v, want [sports]", runs.started)
	}
}
