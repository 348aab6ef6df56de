// Package signals contains the upstream fetchers: weather, air quality,
// sports scoreboard, and the operator override sheet. Every fetcher is
// time-boxed and collapses any failure into a documented safe default, so
// the assembler's joined wait can never fail as a whole.
package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/perogyhouse/moodengine/internal/httputil"
	"github.com/perogyhouse/moodengine/internal/metrics"
	"github.com/perogyhouse/moodengine/internal/models"
)

const (
	DefaultWeatherURL = "https://api.open-meteo.com/v1/forecast"

	// pastDays of hourly history requested, enough to index "this same
	// hour yesterday" and to cover the 10-day minima window.
	pastDays = 10
)

// WeatherClient fetches current conditions plus recent hourly and daily
// history from the open-meteo forecast API.
type WeatherClient struct {
	baseURL string
	client  *http.Client
	lat     float64
	lon     float64
	loc     *time.Location
}

func NewWeatherClient(baseURL string, lat, lon float64, loc *time.Location) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &WeatherClient{
		baseURL: baseURL,
		client:  httputil.NewClient(),
		lat:     lat,
		lon:     lon,
		loc:     loc,
	}
}

type weatherResponse struct {
	Current struct {
		Temp         *float64 `json:"temperature_2m"`
		ApparentTemp *float64 `json:"apparent_temperature"`
		WindSpeed    *float64 `json:"wind_speed_10m"`
		WeatherCode  *int     `json:"weather_code"`
		CloudCover   *float64 `json:"cloud_cover"`
		IsDay        *int     `json:"is_day"`
		SnowDepth    *float64 `json:"snow_depth"` // metres
	} `json:"current"`
	Hourly struct {
		Temp []*float64 `json:"temperature_2m"`
	} `json:"hourly"`
	Daily struct {
		TempMin []*float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// DefaultObservation is what the site assumes when the weather API is
// unreachable: a grey, unremarkable winter day.
func DefaultObservation() models.WeatherObservation {
	return models.WeatherObservation{
		Temp:         -5,
		ApparentTemp: -10,
		WindSpeed:    15,
		WMOCode:      0,
		CloudCover:   50,
		SnowDepthCm:  0,
		IsDay:        true,
		DeltaShock:   0,
	}
}

// Current fetches the current observation. On any failure it returns the
// default observation along with the advisory error.
func (c *WeatherClient) Current(ctx context.Context) (models.WeatherObservation, error) {
	start := time.Now()
	obs, err := c.fetch(ctx)
	metrics.ObserveFetch("weather", time.Since(start).Seconds(), err)
	if err != nil {
		return DefaultObservation(), err
	}
	return obs, nil
}

func (c *WeatherClient) fetch(ctx context.Context) (models.WeatherObservation, error) {
	url := fmt.Sprintf(
		"%s?latitude=%.2f&longitude=%.2f&current=temperature_2m,apparent_temperature,is_day,weather_code,cloud_cover,wind_speed_10m,snow_depth&hourly=temperature_2m&daily=temperature_2m_min&past_days=%d&forecast_days=2&timezone=auto",
		c.baseURL, c.lat, c.lon, pastDays,
	)

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("fetch weather: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("fetch weather: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("fetch weather: status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 15 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return models.WeatherObservation{}, err
	}

	var data weatherResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return models.WeatherObservation{}, fmt.Errorf("unmarshal: %w", err)
	}

	obs := DefaultObservation()
	cur := data.Current
	if cur.Temp != nil {
		obs.Temp = *cur.Temp
	}
	if cur.ApparentTemp != nil {
		obs.ApparentTemp = *cur.ApparentTemp
	}
	if cur.WindSpeed != nil {
		obs.WindSpeed = *cur.WindSpeed
	}
	if cur.WeatherCode != nil {
		obs.WMOCode = *cur.WeatherCode
	}
	if cur.CloudCover != nil {
		obs.CloudCover = *cur.CloudCover
	}
	if cur.IsDay != nil {
		obs.IsDay = *cur.IsDay == 1
	}
	if cur.SnowDepth != nil {
		obs.SnowDepthCm = *cur.SnowDepth * 100
	}

	hour := time.Now().In(c.loc).Hour()
	obs.DeltaShock = deltaShock(data.Hourly.Temp, obs.Temp, pastDays, hour)
	obs.DailyMinima = recentMinima(data.Daily.TempMin, pastDays)

	return obs, nil
}

// deltaShock compares the current temperature against the same hour
// yesterday. The hourly series starts pastDays back, so yesterday's sample
// sits at pastDays*24 - 24 + hour. A missing or null sample means zero
// shock.
func deltaShock(hourly []*float64, temp float64, pastDays, hour int) float64 {
	idx := pastDays*24 - 24 + hour
	if idx < 0 || idx >= len(hourly) || hourly[idx] == nil {
		return 0
	}
	return temp - *hourly[idx]
}

// recentMinima returns the historical daily minima in order, most recent
// last, dropping forecast days and null samples. The daily series covers
// pastDays of history followed by today and tomorrow.
func recentMinima(daily []*float64, pastDays int) []float64 {
	end := pastDays + 1 // history plus today
	if end > len(daily) {
		end = len(daily)
	}
	var minima []float64
	for _, v := range daily[:end] {
		if v != nil {
			minima = append(minima, *v)
		}
	}
	return minima
}
