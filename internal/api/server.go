// Package api serves the restaurant site: the themed landing page, the
// mood JSON endpoints, and the operational surfaces.
package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/perogyhouse/moodengine/internal/mood"
	"github.com/perogyhouse/moodengine/internal/store"
)

//go:embed templates/*
var templateFS embed.FS

type Server struct {
	assembler *mood.Assembler
	store     *store.Store
	port      string
	loc       *time.Location
	tmpl      *template.Template
}

func NewServer(assembler *mood.Assembler, st *store.Store, port string, loc *time.Location) *Server {
	funcs := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

	return &Server{
		assembler: assembler,
		store:     st,
		port:      port,
		loc:       loc,
		tmpl:      tmpl,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.withSnapshot(http.HandlerFunc(s.handleIndex)))
	mux.Handle("/api/mood", s.withSnapshot(http.HandlerFunc(s.handleAPIMood)))
	mux.HandleFunc("/api/history", s.handleAPIHistory)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
