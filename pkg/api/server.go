/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api serves the dashboard snapshots and the static frontend over
// HTTP.
package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/goesradar/pkg/fsscan"
	httpx "github.com/mfreeman451/goesradar/pkg/http"
	"github.com/mfreeman451/goesradar/pkg/logs"
)

const (
	defaultImageLimit = 10
	imageContentType  = "image/jpeg"
)

// APIServer routes requests to a Dashboard.
type APIServer struct {
	router    *mux.Router
	dash      Dashboard
	staticDir string
	limiter   *rate.Limiter
	log       *zap.Logger
}

// Option customizes an APIServer.
type Option func(*APIServer)

// WithStaticDir serves the frontend from dir when it exists.
func WithStaticDir(dir string) Option {
	return func(s *APIServer) { s.staticDir = dir }
}

// WithRateLimit caps API requests at perSecond with the given burst. A
// non-positive rate disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *APIServer) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}

		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// NewAPIServer builds the router for dash.
func NewAPIServer(dash Dashboard, log *zap.Logger, opts ...Option) *APIServer {
	s := &APIServer{
		router: mux.NewRouter(),
		dash:   dash,
		log:    log,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

// Handler is the complete HTTP handler including CORS and request logging.
func (s *APIServer) Handler() http.Handler {
	return httpx.RequestLogger(s.log)(httpx.CommonMiddleware(s.router))
}

func (s *APIServer) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(httpx.RateLimit(s.limiter))
	api.NotFoundHandler = http.HandlerFunc(notFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/config", s.getConfig).Methods(http.MethodGet)
	api.HandleFunc("/signal", s.getSignal).Methods(http.MethodGet)
	api.HandleFunc("/services", s.getServices).Methods(http.MethodGet)
	api.HandleFunc("/disk", s.getDisk).Methods(http.MethodGet)
	api.HandleFunc("/system", s.getSystem).Methods(http.MethodGet)
	api.HandleFunc("/images", s.getImages).Methods(http.MethodGet)
	api.HandleFunc("/image/{type}/{date}/{filename}", s.getImage).Methods(http.MethodGet)
	api.HandleFunc("/uploads", s.getUploads).Methods(http.MethodGet)
	api.HandleFunc("/logs/{log_type}", s.getLogs).Methods(http.MethodGet)
	api.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(notFound)

	s.configureStaticServing()
}

func (s *APIServer) getConfig(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.dash.Config())
}

func (s *APIServer) getSignal(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.dash.Signal(r.Context()))
}

func (s *APIServer) getServices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.dash.Services(r.Context()))
}

func (s *APIServer) getDisk(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.dash.Disk(r.Context()))
}

func (s *APIServer) getSystem(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.dash.System(r.Context()))
}

func (s *APIServer) getImages(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", defaultImageLimit)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	s.writeJSON(w, s.dash.Images(r.Context(), limit))
}

func (s *APIServer) getImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	path, err := s.dash.ImagePath(vars["type"], vars["date"], vars["filename"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.writeError(w, fsscan.ErrImageNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.writeError(w, fsscan.ErrImageNotFound)
		return
	}

	w.Header().Set("Content-Type", imageContentType)
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (s *APIServer) getUploads(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.dash.Uploads(r.Context()))
}

func (s *APIServer) getLogs(w http.ResponseWriter, r *http.Request) {
	lines, err := intQuery(r, "lines", logs.DefaultLines)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "lines must be an integer")
		return
	}

	res, err := s.dash.Logs(r.Context(), mux.Vars(r)["log_type"], lines)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, res)
}

func (s *APIServer) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.dash.Health())
}

func (s *APIServer) writeJSON(w http.ResponseWriter, v any) {
	if err := httpx.WriteJSON(w, http.StatusOK, v); err != nil {
		s.log.Warn("error encoding response", zap.Error(err))
	}
}

func (s *APIServer) writeError(w http.ResponseWriter, err error) {
	status, detail := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}

	httpx.WriteError(w, status, detail)
}

// errorStatus maps dashboard errors to an HTTP status and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, fsscan.ErrInvalidPath):
		return http.StatusBadRequest, "Invalid path"
	case errors.Is(err, fsscan.ErrUnknownImageType):
		return http.StatusNotFound, "Unknown image type"
	case errors.Is(err, fsscan.ErrImageNotFound):
		return http.StatusNotFound, "Image not found"
	case errors.Is(err, logs.ErrUnknownLogType):
		return http.StatusBadRequest, "Unknown log type"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
