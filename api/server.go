package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/service"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/solver"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

// Solver is the part of service.Service the server needs.
type Solver interface {
	Solve(ctx context.Context, lvl *level.Level, req service.Request) (*service.Report, error)
}

// Config configures a Server.
type Config struct {
	// LevelsDir enables the /api/levels routes when set.
	LevelsDir string
	// Timeout bounds each solve; zero means no limit.
	Timeout time.Duration
	// Logger defaults to the logrus standard logger.
	Logger log.FieldLogger
}

// Server represents the REST API server.
type Server struct {
	solver Solver
	cfg    Config
	log    log.FieldLogger
	router *mux.Router
}

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Level  *level.Level `json:"level" yaml:"level"`
	Demo   *level.Demo  `json:"demo,omitempty" yaml:"demo,omitempty"`
	Render bool         `json:"render,omitempty" yaml:"render,omitempty"`
}

type ctxKey struct{}

// NewServer creates a new API server.
func NewServer(s Solver, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	srv := &Server{
		solver: s,
		cfg:    cfg,
		log:    cfg.Logger,
		router: mux.NewRouter(),
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestID)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	api.HandleFunc("/levels", s.handleListLevels).Methods(http.MethodGet)
	api.HandleFunc("/levels/{name}/solve", s.handleSolveLevel).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestID tags every request with a uuid and logs its outcome.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		began := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.log.WithFields(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"elapsed":    time.Since(began),
		}).Info("request served")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusOf maps pipeline errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, level.ErrMalformedLevel),
		errors.Is(err, level.ErrDimensionMismatch),
		errors.Is(err, level.ErrStartOutOfBounds),
		errors.Is(err, level.ErrUnknownDirection),
		errors.Is(err, level.ErrUnknownFormat),
		errors.Is(err, service.ErrNilLevel):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrTooManyGoals):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	format, err := level.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("read body: %v", err))
		return
	}

	var req SolveRequest
	if format == level.FormatYAML {
		err = yaml.Unmarshal(body, &req)
	} else {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("%v: %v", level.ErrMalformedLevel, err))
		return
	}
	if req.Level == nil {
		respondError(w, http.StatusBadRequest, service.ErrNilLevel.Error())
		return
	}
	if err = req.Level.Normalize(); err != nil {
		respondError(w, statusOf(err), err.Error())
		return
	}

	s.solve(w, r, req.Level, service.Request{Demo: req.Demo, Render: req.Render || renderParam(r)})
}

func (s *Server) handleListLevels(w http.ResponseWriter, r *http.Request) {
	if s.cfg.LevelsDir == "" {
		respondError(w, http.StatusNotFound, "no level directory configured")
		return
	}
	paths, err := level.List(s.cfg.LevelsDir)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(names),
		"levels": names,
	})
}

func (s *Server) handleSolveLevel(w http.ResponseWriter, r *http.Request) {
	if s.cfg.LevelsDir == "" {
		respondError(w, http.StatusNotFound, "no level directory configured")
		return
	}
	name := mux.Vars(r)["name"]

	path, err := level.Lookup(s.cfg.LevelsDir, name)
	if err != nil {
		respondError(w, statusOf(err), err.Error())
		return
	}
	lvl, err := level.Load(path)
	if err != nil {
		respondError(w, statusOf(err), err.Error())
		return
	}

	s.solve(w, r, lvl, service.Request{Render: renderParam(r)})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, lvl *level.Level, req service.Request) {
	ctx := r.Context()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	rep, err := s.solver.Solve(ctx, lvl, req)
	if err != nil {
		s.log.WithError(err).WithField("request_id", ctx.Value(ctxKey{})).Warn("solve failed")
		respondError(w, statusOf(err), err.Error())
		return
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		rep.ID = id
	}
	respondJSON(w, http.StatusOK, rep)
}

func renderParam(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("render"))
	return v
}
