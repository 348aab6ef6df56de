package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/perogyhouse/moodengine/internal/models"
	"github.com/perogyhouse/moodengine/internal/mood"
	"github.com/perogyhouse/moodengine/internal/themes"
)

type contextKey int

const snapshotKey contextKey = iota

// withSnapshot resolves the mood snapshot for the request and stashes it in
// the request context. The ?theme= and ?temp= query parameters force a
// fresh, uncached compute for previewing moods.
func (s *Server) withSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var opts mood.Options
		if theme := r.URL.Query().Get("theme"); theme != "" {
			opts.ForceTheme = themes.ID(theme)
		}
		if raw := r.URL.Query().Get("temp"); raw != "" {
			if temp, err := strconv.ParseFloat(raw, 64); err == nil {
				opts.MockTemp = &temp
			}
		}

		snap := s.assembler.Current(r.Context(), opts)
		ctx := context.WithValue(r.Context(), snapshotKey, snap)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// snapshotFrom returns the snapshot attached by withSnapshot.
func snapshotFrom(ctx context.Context) *models.Snapshot {
	snap, _ := ctx.Value(snapshotKey).(*models.Snapshot)
	return snap
}
