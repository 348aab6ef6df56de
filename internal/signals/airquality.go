package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/perogyhouse/moodengine/internal/httputil"
	"github.com/perogyhouse/moodengine/internal/metrics"
)

const DefaultAirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"

// AirQualityClient fetches the current US AQI reading. Air quality only
// matters when it is catastrophically bad, so failures report 0 (clean).
type AirQualityClient struct {
	baseURL string
	client  *http.Client
	lat     float64
	lon     float64
}

func NewAirQualityClient(baseURL string, lat, lon float64) *AirQualityClient {
	if baseURL == "" {
		baseURL = DefaultAirQualityURL
	}
	return &AirQualityClient{
		baseURL: baseURL,
		client:  httputil.NewClient(),
		lat:     lat,
		lon:     lon,
	}
}

type airQualityResponse struct {
	Current struct {
		USAQI *float64 `json:"us_aqi"`
	} `json:"current"`
}

func (c *AirQualityClient) CurrentAQI(ctx context.Context) (int, error) {
	start := time.Now()
	aqi, err := c.fetch(ctx)
	metrics.ObserveFetch("airquality", time.Since(start).Seconds(), err)
	if err != nil {
		return 0, err
	}
	return aqi, nil
}

func (c *AirQualityClient) fetch(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s?latitude=%.2f&longitude=%.2f&current=us_aqi", c.baseURL, c.lat, c.lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch air quality: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("fetch air quality: status %d: %s", resp.StatusCode, string(b))
	}

	var data airQualityResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("unmarshal: %w", err)
	}
	if data.Current.USAQI == nil {
		return 0, nil
	}
	return int(*data.Current.USAQI), nil
}
