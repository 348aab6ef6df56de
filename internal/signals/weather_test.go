package signals

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestWeatherCurrent(t *testing.T) {
	t.Parallel()

	hourly := make([]string, pastDays*24+48)
	for i := range hourly {
		hourly[i] = "-10"
	}
	// Same hour yesterday, for any hour of day, reads -20.
	for h := 0; h < 24; h++ {
		hourly[pastDays*24-24+h] = "-20"
	}
	daily := strings.Repeat("-25,", pastDays) + "-25,-5"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("past_days") != "10" {
			t.Errorf("past_days = %q, want 10", q.Get("past_days"))
		}
		fmt.Fprintf(w, `{
			"current": {
				"temperature_2m": -10,
				"apparent_temperature": -18,
				"wind_speed_10m": 22.5,
				"weather_code": 71,
				"cloud_cover": 80,
				"is_day": 1,
				"snow_depth": 0.15
			},
			"hourly": {"temperature_2m": [%s]},
			"daily": {"temperature_2m_min": [%s]}
		}`, strings.Join(hourly, ","), daily)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 49.89, -97.14, time.UTC)
	obs, err := c.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if obs.Temp != -10 {
		t.Errorf("Temp = %v, want -10", obs.Temp)
	}
	if obs.ApparentTemp != -18 {
		t.Errorf("ApparentTemp = %v, want -18", obs.ApparentTemp)
	}
	if obs.WMOCode != 71 {
		t.Errorf("WMOCode = %d, want 71", obs.WMOCode)
	}
	if !obs.IsDay {
		t.Error("IsDay = false, want true")
	}
	if obs.SnowDepthCm != 15 {
		t.Errorf("SnowDepthCm = %v, want 15", obs.SnowDepthCm)
	}
	if obs.DeltaShock != 10 {
		t.Errorf("DeltaShock = %v, want 10", obs.DeltaShock)
	}
	// History plus today, forecast day dropped.
	if len(obs.DailyMinima) != pastDays+1 {
		t.Errorf("len(DailyMinima) = %d, want %d", len(obs.DailyMinima), pastDays+1)
	}
}

func TestWeatherCurrentFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 49.89, -97.14, time.UTC)
	obs, err := c.Current(context.Background())
	if err == nil {
		t.Fatal("Current: want error")
	}

	want := DefaultObservation()
	if obs.Temp != want.Temp || obs.WindSpeed != want.WindSpeed || !obs.IsDay {
		t.Errorf("failed fetch returned %+v, want defaults %+v", obs, want)
	}
}

func TestWeatherCurrentNullFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"current": {"temperature_2m": 3.5, "apparent_temperature": null, "is_day": 0},
			"hourly": {"temperature_2m": []},
			"daily": {"temperature_2m_min": [null, -12]}
		}`)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 49.89, -97.14, time.UTC)
	obs, err := c.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if obs.Temp != 3.5 {
		t.Errorf("Temp = %v, want 3.5", obs.Temp)
	}
	if obs.ApparentTemp != DefaultObservation().ApparentTemp {
		t.Errorf("null ApparentTemp = %v, want default", obs.ApparentTemp)
	}
	if obs.IsDay {
		t.Error("IsDay = true, want false")
	}
	if obs.DeltaShock != 0 {
		t.Errorf("DeltaShock = %v, want 0 with empty hourly", obs.DeltaShock)
	}
	if len(obs.DailyMinima) != 1 || obs.DailyMinima[0] != -12 {
		t.Errorf("DailyMinima = %v, want [-12]", obs.DailyMinima)
	}
}

func TestDeltaShock(t *testing.T) {
	t.Parallel()

	series := make([]*float64, 240)
	series[216+9] = floatPtr(-2)

	tests := []struct {
		name   string
		hourly []*float64
		temp   float64
		hour   int
		want   float64
	}{
		{"yesterday sample present", series, 10, 9, 12},
		{"null sample", series, 10, 10, 0},
		{"short series", []*float64{floatPtr(1)}, 10, 9, 0},
		{"empty series", nil, 10, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := deltaShock(tt.hourly, tt.temp, pastDays, tt.hour); got != tt.want {
				t.Errorf("deltaShock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecentMinima(t *testing.T) {
	t.Parallel()

	daily := make([]*float64, 12)
	for i := range daily {
		daily[i] = floatPtr(float64(-i))
	}
	got := recentMinima(daily, pastDays)
	if len(got) != 11 {
		t.Fatalf("len = %d, want 11", len(got))
	}
	if got[10] != -10 {
		t.Errorf("last = %v, want -10 (today, not forecast)", got[10])
	}
}
