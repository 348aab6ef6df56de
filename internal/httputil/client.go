package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout caps any single upstream call. The mood pipeline waits on
// all fetchers before rendering, so this bounds page latency too.
const DefaultTimeout = 10 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}
