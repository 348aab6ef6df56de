package signals

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/perogyhouse/moodengine/internal/httputil"
	"github.com/perogyhouse/moodengine/internal/metrics"
	"github.com/perogyhouse/moodengine/internal/models"
)

// DefaultOverrideTTL keeps sheet polling light; operators do not need
// sub-minute reaction time.
const DefaultOverrideTTL = time.Minute

// OverrideClient reads the operator override sheet, published as CSV at a
// URL or dropped as a local file. It keeps its own short-lived cache so
// snapshot rebuilds do not hammer the sheet host.
type OverrideClient struct {
	url    string
	path   string
	client *http.Client
	ttl    time.Duration

	mu        sync.Mutex
	mode      models.OverrideMode
	message   string
	fetchedAt time.Time
}

// NewOverrideClient builds a client reading from url, or from path when
// url is empty. With neither set, Current always reports NONE.
func NewOverrideClient(url, path string, ttl time.Duration) *OverrideClient {
	if ttl <= 0 {
		ttl = DefaultOverrideTTL
	}
	return &OverrideClient{
		url:    url,
		path:   path,
		client: httputil.NewClient(),
		ttl:    ttl,
	}
}

// Current returns the active override, NONE when the sheet is empty,
// expired, unreachable, or unconfigured.
func (c *OverrideClient) Current(ctx context.Context, now time.Time) (models.OverrideMode, string, error) {
	if c.url == "" && c.path == "" {
		return models.OverrideNone, "", nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < c.ttl {
		return c.mode, c.message, nil
	}

	start := time.Now()
	mode, message, err := c.fetch(ctx, now)
	metrics.ObserveFetch("override", time.Since(start).Seconds(), err)
	if err != nil {
		return models.OverrideNone, "", err
	}

	c.mode, c.message, c.fetchedAt = mode, message, now
	return mode, message, nil
}

func (c *OverrideClient) fetch(ctx context.Context, now time.Time) (models.OverrideMode, string, error) {
	var r io.ReadCloser
	if c.url != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return models.OverrideNone, "", fmt.Errorf("build request: %w", err)
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return models.OverrideNone, "", fmt.Errorf("fetch override sheet: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return models.OverrideNone, "", fmt.Errorf("fetch override sheet: status %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(c.path)
		if err != nil {
			return models.OverrideNone, "", fmt.Errorf("open override sheet: %w", err)
		}
		r = f
	}
	defer r.Close()

	return parseOverrideSheet(r, now)
}

// parseOverrideSheet scans the sheet for the first active, unexpired row.
// Expected columns: Active, Mode, Message, ExpiresAt (RFC 3339, optional).
func parseOverrideSheet(r io.Reader, now time.Time) (models.OverrideMode, string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return models.OverrideNone, "", nil
	}
	if err != nil {
		return models.OverrideNone, "", fmt.Errorf("read header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return models.OverrideNone, "", nil
		}
		if err != nil {
			return models.OverrideNone, "", fmt.Errorf("read row: %w", err)
		}
		if !strings.EqualFold(field(row, "active"), "TRUE") {
			continue
		}
		if raw := field(row, "expiresat"); raw != "" {
			expires, err := time.Parse(time.RFC3339, raw)
			if err != nil || !now.Before(expires) {
				continue
			}
		}
		mode := models.ParseOverrideMode(field(row, "mode"))
		if mode == models.OverrideNone {
			continue
		}
		return mode, field(row, "message"), nil
	}
}
