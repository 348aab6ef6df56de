package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	loc, err := time.LoadLocation("America/Winnipeg")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	store := New(db, loc)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func testRecord(createdAt time.Time, theme themes.ID) models.MoodRecord {
	cfg := themes.Get(theme)
	return models.MoodRecord{
		CreatedAt:    createdAt,
		ThemeID:      cfg.ID,
		Label:        cfg.Label,
		Temp:         -22.5,
		ApparentTemp: -31,
		WindSpeed:    28,
		WMOCode:      71,
		AQI:          12,
		Outcome:      models.OutcomeVictory,
		Override:     models.OverrideNone,
		HolidayName:  "Louis Riel Day",
		DeltaShock:   -3,
		Deviation:    -8.5,
		MentalTemp:   -12.5,
		GrindDays:    4,
	}
}

func TestRecordAndRecentMoods(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2026, time.February, 16, 8, 0, 0, 0, time.UTC)
	for i, id := range []themes.ID{themes.DeepFreeze, themes.Bunker, themes.VictoryCold} {
		rec := testRecord(base.Add(time.Duration(i)*time.Hour), id)
		if err := store.RecordMood(rec); err != nil {
			t.Fatalf("RecordMood: %v", err)
		}
	}

	records, err := store.RecentMoods(10)
	if err != nil {
		t.Fatalf("RecentMoods: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if records[0].ThemeID != themes.VictoryCold {
		t.Errorf("newest ThemeID = %q, want %q", records[0].ThemeID, themes.VictoryCold)
	}
	if records[2].ThemeID != themes.DeepFreeze {
		t.Errorf("oldest ThemeID = %q, want %q", records[2].ThemeID, themes.DeepFreeze)
	}

	rec := records[0]
	if rec.Temp != -22.5 {
		t.Errorf("Temp = %v, want -22.5", rec.Temp)
	}
	if rec.Outcome != models.OutcomeVictory {
		t.Errorf("Outcome = %q, want VICTORY", rec.Outcome)
	}
	if rec.HolidayName != "Louis Riel Day" {
		t.Errorf("HolidayName = %q, want Louis Riel Day", rec.HolidayName)
	}
	if rec.GrindDays != 4 {
		t.Errorf("GrindDays = %d, want 4", rec.GrindDays)
	}
}

func TestRecentMoodsLimit(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord(base.Add(time.Duration(i)*time.Minute), themes.Normal)
		if err := store.RecordMood(rec); err != nil {
			t.Fatalf("RecordMood: %v", err)
		}
	}

	records, err := store.RecentMoods(2)
	if err != nil {
		t.Fatalf("RecentMoods: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestLatestMood(t *testing.T) {
	store := setupTestStore(t)

	rec, err := store.LatestMood()
	if err != nil {
		t.Fatalf("LatestMood: %v", err)
	}
	if rec != nil {
		t.Fatalf("LatestMood on empty log = %+v, want nil", rec)
	}

	newRec := testRecord(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC), themes.PrairieGold)
	if err := store.RecordMood(newRec); err != nil {
		t.Fatalf("RecordMood: %v", err)
	}

	rec, err = store.LatestMood()
	if err != nil {
		t.Fatalf("LatestMood: %v", err)
	}
	if rec == nil || rec.ThemeID != themes.PrairieGold {
		t.Errorf("LatestMood = %+v, want PRAIRIE_GOLD", rec)
	}
}

func TestFetchRuns(t *testing.T) {
	store := setupTestStore(t)

	okID, err := store.StartFetchRun("weather")
	if err != nil {
		t.Fatalf("StartFetchRun: %v", err)
	}
	if err := store.CompleteFetchRun(okID, nil); err != nil {
		t.Fatalf("CompleteFetchRun: %v", err)
	}

	failID, err := store.StartFetchRun("sports")
	if err != nil {
		t.Fatalf("StartFetchRun: %v", err)
	}
	if err := store.CompleteFetchRun(failID, errors.New("status 503")); err != nil {
		t.Fatalf("CompleteFetchRun: %v", err)
	}

	runs, err := store.RecentFetchRuns(10)
	if err != nil {
		t.Fatalf("RecentFetchRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}

	bySource := map[string]models.FetchRun{}
	for _, run := range runs {
		bySource[run.Source] = run
	}
	if !bySource["weather"].Success {
		t.Error("weather run not marked success")
	}
	if bySource["sports"].Success {
		t.Error("sports run marked success, want failure")
	}
	if bySource["sports"].Error != "status 503" {
		t.Errorf("sports error = %q, want status 503", bySource["sports"].Error)
	}
}

func TestPruneMoodLog(t *testing.T) {
	store := setupTestStore(t)

	old := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{old, old.Add(time.Hour), recent} {
		if err := store.RecordMood(testRecord(at, themes.Normal)); err != nil {
			t.Fatalf("RecordMood: %v", err)
		}
	}

	pruned, err := store.PruneMoodLog(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PruneMoodLog: %v", err)
	}
	if pruned != 2 {
		t.Errorf("pruned = %d, want 2", pruned)
	}

	records, err := store.RecentMoods(10)
	if err != nil {
		t.Fatalf("RecentMoods: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}
