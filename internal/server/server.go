// Package server is the local preview server. It re-reads the project
// spec on every request so edits to chart.yaml show up on refresh.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/led-ufc/carcara/internal/build"
	"github.com/led-ufc/carcara/pkg/render"
	"github.com/led-ufc/carcara/pkg/spec"
	"github.com/led-ufc/carcara/pkg/validation"
)

// Server serves a chart project over HTTP.
type Server struct {
	projectPath string
	port        int
	log         *logrus.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         log,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/labels", s.handleLabels)
	mux.HandleFunc("GET /chart.svg", s.handleSVG)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.WithFields(logrus.Fields{
		"addr":    "http://localhost" + addr,
		"project": s.projectPath,
	}).Info("preview server starting")

	return http.ListenAndServe(addr, mux)
}

func (s *Server) load() (*spec.ChartSpec, error) {
	return spec.LoadProject(s.projectPath)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>carcara</title></head>
<body style="margin:0;background:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<img src="/chart.svg" alt="chart">
</body></html>`)
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	cs, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	sc, err := build.Scene(cs)
	if err != nil {
		s.fail(w, err)
		return
	}

	opts := render.DefaultOptions()
	if cs.Output.Padding > 0 {
		opts.Padding = cs.Output.Padding
	}
	if cs.Output.Background != "" {
		opts.Background = cs.Output.Background
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	render.WriteScene(w, sc, opts)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	cs, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, cs)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	cs, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	sc, err := build.Scene(cs)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, sc)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	cs, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, validation.Validate(cs))
}

func (s *Server) handleLabels(w http.ResponseWriter, _ *http.Request) {
	cs, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	results, err := build.LabelResults(cs)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, results)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.log.WithError(err).Error("request failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
