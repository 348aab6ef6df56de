// Package store persists the mood log and upstream fetch history in
// sqlite. The log exists for the /api/history endpoint and for eyeballing
// how the cascade behaved over a week of real weather.
package store

import (
	"database/sql"
	"time"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/themes"
)

type Store struct {
	db  *sql.DB
	loc *time.Location
}

func New(db *sql.DB, loc *time.Location) *Store {
	return &Store{db: db, loc: loc}
}

// RecordMood appends one row to the mood log.
func (s *Store) RecordMood(rec models.MoodRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO mood_log (created_at, theme_id, label, temp, apparent_temp, wind_speed, wmo_code, aqi, outcome, override, holiday_name, blackout, delta_shock, deviation, mental_temp, grind_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.CreatedAt, string(rec.ThemeID), rec.Label,
		rec.Temp, rec.ApparentTemp, rec.WindSpeed, rec.WMOCode, rec.AQI,
		string(rec.Outcome), string(rec.Override),
		rec.HolidayName, rec.Blackout,
		rec.DeltaShock, rec.Deviation, rec.MentalTemp, rec.GrindDays)
	return err
}

// RecentMoods returns the newest entries first, capped at limit.
func (s *Store) RecentMoods(limit int) ([]models.MoodRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, theme_id, label, temp, apparent_temp, wind_speed, wmo_code, aqi, outcome, override, holiday_name, blackout, delta_shock, deviation, mental_temp, grind_days
		FROM mood_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.MoodRecord
	for rows.Next() {
		var rec models.MoodRecord
		var themeID, outcome, override string
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &themeID, &rec.Label,
			&rec.Temp, &rec.ApparentTemp, &rec.WindSpeed, &rec.WMOCode, &rec.AQI,
			&outcome, &override, &rec.HolidayName, &rec.Blackout,
			&rec.DeltaShock, &rec.Deviation, &rec.MentalTemp, &rec.GrindDays); err != nil {
			return nil, err
		}
		rec.ThemeID = themes.ID(themeID)
		rec.Outcome = models.SportsOutcome(outcome)
		rec.Override = models.OverrideMode(override)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LatestMood returns the most recent log entry, or nil when the log is
// empty.
func (s *Store) LatestMood() (*models.MoodRecord, error) {
	records, err := s.RecentMoods(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// StartFetchRun opens a fetch-run row and returns its id for completion.
func (s *Store) StartFetchRun(source string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO fetch_runs (source, started_at, success)
		VALUES (?, ?, FALSE)
	`, source, time.Now().In(s.loc))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CompleteFetchRun closes a fetch-run row with its outcome.
func (s *Store) CompleteFetchRun(id int64, fetchErr error) error {
	errText := ""
	if fetchErr != nil {
		errText = fetchErr.Error()
	}
	_, err := s.db.Exec(`
		UPDATE fetch_runs
		SET completed_at = ?, success = ?, error = ?
		WHERE id = ?
	`, time.Now().In(s.loc), fetchErr == nil, errText, id)
	return err
}

// RecentFetchRuns returns the newest runs first, capped at limit.
func (s *Store) RecentFetchRuns(limit int) ([]models.FetchRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, source, started_at, COALESCE(completed_at, started_at), success, COALESCE(error, '')
		FROM fetch_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.FetchRun
	for rows.Next() {
		var run models.FetchRun
		if err := rows.Scan(&run.ID, &run.Source, &run.StartedAt, &run.CompletedAt, &run.Success, &run.Error); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// PruneMoodLog deletes entries older than the cutoff and reports how many
// rows went.
func (s *Store) PruneMoodLog(before time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM mood_log WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
