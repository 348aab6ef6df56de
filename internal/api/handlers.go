package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	snap := snapshotFrom(r.Context())
	if snap == nil {
		http.Error(w, "no snapshot", http.StatusInternalServerError)
		return
	}

	if err := s.tmpl.ExecuteTemplate(w, "index.html", newIndexData(snap, s.loc)); err != nil {
		log.Printf("api: render index: %v", err)
	}
}

func (s *Server) handleAPIMood(w http.ResponseWriter, r *http.Request) {
	snap := snapshotFrom(r.Context())
	if snap == nil {
		http.Error(w, "no snapshot", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	records, err := s.store.RecentMoods(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

type healthStatus struct {
	Status     string    `json:"status"`
	Theme      string    `json:"theme,omitempty"`
	LastMoodAt time.Time `json:"last_mood_at,omitempty"`
	Error      string    `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	latest, err := s.store.LatestMood()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(healthStatus{Status: "error", Error: err.Error()})
		return
	}

	health := healthStatus{Status: "ok"}
	if latest != nil {
		health.Theme = string(latest.ThemeID)
		health.LastMoodAt = latest.CreatedAt
	}
	json.NewEncoder(w).Encode(health)
}
