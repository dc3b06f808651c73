// Package server exposes the root-finding toolkit over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/copyleftdev/ROOTR/internal/config"
	"github.com/copyleftdev/ROOTR/internal/rootfind"
	"github.com/copyleftdev/ROOTR/internal/rootfind/catalog"
)

// Methods lists the solver names accepted by the solve endpoint.
var Methods = []string{
	"bisection",
	"false_position",
	"newton_raphson",
	"tangent",
	"secant",
	"fixed_point",
}

// SolveRecord is a completed solve kept in memory for later retrieval.
type SolveRecord struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Function  string    `json:"function"`
	Root      *float64  `json:"root,omitempty"`
	Converged bool      `json:"converged"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Server implements the HTTP API for the root-finding service. Recorded
// solves are held in memory and are safe for concurrent access.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	solves   map[string]*SolveRecord
	solvesMu sync.RWMutex
}

// NewServer creates a new server instance with the given config and logger.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		solves: make(map[string]*SolveRecord),
	}
}

// RegisterRoutes mounts the API onto the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/solve/{id}", s.handleSolveRecord)
		r.Post("/bracket", s.handleBracket)
		r.Get("/functions", s.handleFunctions)
		r.Get("/methods", s.handleMethods)
	})
}

type solveRequest struct {
	Method        string    `json:"method"`
	Function      string    `json:"function,omitempty"`
	Polynomial    []float64 `json:"polynomial,omitempty"`
	A             *float64  `json:"a,omitempty"`
	B             *float64  `json:"b,omitempty"`
	X0            *float64  `json:"x0,omitempty"`
	X1            *float64  `json:"x1,omitempty"`
	Tolerance     float64   `json:"tolerance,omitempty"`
	MaxIterations int       `json:"max_iterations,omitempty"`
}

// resolveFunc turns the request's function selector into callables. The
// derivative comes from the catalog or polynomial differentiation when
// available, otherwise from the forward-difference estimator.
func resolveFunc(req *solveRequest) (f, df rootfind.Func, name string, err error) {
	if len(req.Polynomial) > 0 {
		if req.Function != "" {
			return nil, nil, "", fmt.Errorf("function and polynomial are mutually exclusive")
		}
		p := catalog.Polynomial(req.Polynomial)
		return p.Func(), p.Derivative().Func(), "polynomial", nil
	}
	if req.Function == "" {
		return nil, nil, "", fmt.Errorf("function or polynomial is required")
	}
	entry, err := catalog.Lookup(req.Function)
	if err != nil {
		return nil, nil, "", err
	}
	f = entry.Func
	df = entry.Derivative
	if df == nil {
		df = func(x float64) float64 {
			return rootfind.Derivative(f, x, 0)
		}
	}
	return f, df, entry.Name, nil
}

// settingsFor merges per-request tuning over the configured defaults.
func (s *Server) settingsFor(req *solveRequest) *rootfind.Settings {
	set := &rootfind.Settings{
		Tolerance:     s.cfg.Solver.Tolerance,
		MaxIterations: s.cfg.Solver.MaxIterations,
	}
	if req.Tolerance > 0 {
		set.Tolerance = req.Tolerance
	}
	if req.MaxIterations > 0 {
		set.MaxIterations = req.MaxIterations
	}
	return set
}

// handleSolve runs one solver call. A non-converged outcome is a normal
// response with converged=false, not an HTTP error; only malformed
// requests are rejected.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	f, df, fnName, err := resolveFunc(&req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSolveRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	set := s.settingsFor(&req)

	start := time.Now()
	root, solveErr := dispatch(&req, f, df, set)
	observeSolve(req.Method, solveErr, time.Since(start))

	rec := &SolveRecord{
		ID:        uuid.NewString(),
		Method:    req.Method,
		Function:  fnName,
		Converged: solveErr == nil,
		CreatedAt: time.Now().UTC(),
	}
	if solveErr == nil {
		rec.Root = &root
	} else {
		rec.Detail = solveErr.Error()
	}

	s.solvesMu.Lock()
	s.solves[rec.ID] = rec
	s.solvesMu.Unlock()

	s.logger.Info("solve completed",
		zap.String("solve_id", rec.ID),
		zap.String("method", rec.Method),
		zap.String("function", rec.Function),
		zap.Bool("converged", rec.Converged),
	)

	s.respondJSON(w, http.StatusOK, rec)
}

// validateSolveRequest checks that the request carries the numeric inputs
// its method needs.
func validateSolveRequest(req *solveRequest) error {
	switch req.Method {
	case "bisection", "false_position":
		if req.A == nil || req.B == nil {
			return fmt.Errorf("%s requires bounds a and b", req.Method)
		}
	case "newton_raphson", "tangent", "fixed_point":
		if req.X0 == nil {
			return fmt.Errorf("%s requires initial guess x0", req.Method)
		}
	case "secant":
		if req.X0 == nil || req.X1 == nil {
			return fmt.Errorf("secant requires guesses x0 and x1")
		}
	default:
		return fmt.Errorf("unknown method %q", req.Method)
	}
	return nil
}

// dispatch runs the validated request's solver. The returned error is the
// solver outcome: nil or a not-found sentinel.
func dispatch(req *solveRequest, f, df rootfind.Func, set *rootfind.Settings) (float64, error) {
	switch req.Method {
	case "bisection":
		return rootfind.Bisection(f, *req.A, *req.B, set)
	case "false_position":
		return rootfind.FalsePosition(f, *req.A, *req.B, set)
	case "newton_raphson":
		return rootfind.NewtonRaphson(f, df, *req.X0, set)
	case "tangent":
		return rootfind.Tangent(f, df, *req.X0, set)
	case "secant":
		return rootfind.Secant(f, *req.X0, *req.X1, set)
	case "fixed_point":
		return rootfind.FixedPoint(f, *req.X0, set)
	default:
		return 0, fmt.Errorf("unknown method %q", req.Method)
	}
}

// handleSolveRecord returns a previously recorded solve.
func (s *Server) handleSolveRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.solvesMu.RLock()
	rec, ok := s.solves[id]
	s.solvesMu.RUnlock()

	if !ok {
		s.respondError(w, http.StatusNotFound, "solve not found")
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

type bracketRequest struct {
	Function   string    `json:"function,omitempty"`
	Polynomial []float64 `json:"polynomial,omitempty"`
	X          float64   `json:"x"`
	Step       float64   `json:"step,omitempty"`
	Factor     float64   `json:"factor,omitempty"`
	MaxProbes  int       `json:"max_probes,omitempty"`
}

type bracketResponse struct {
	Found  bool     `json:"found"`
	Low    *float64 `json:"low,omitempty"`
	High   *float64 `json:"high,omitempty"`
	Detail string   `json:"detail,omitempty"`
}

// handleBracket runs the expanding bracket search. Probe-budget exhaustion
// is a normal response with found=false.
func (s *Server) handleBracket(w http.ResponseWriter, r *http.Request) {
	var req bracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	f, _, _, err := resolveFunc(&solveRequest{Function: req.Function, Polynomial: req.Polynomial})
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := &rootfind.BracketSettings{
		Step:      s.cfg.Solver.BracketStep,
		Factor:    s.cfg.Solver.BracketFactor,
		MaxProbes: s.cfg.Solver.BracketProbes,
	}
	if req.Step > 0 {
		set.Step = req.Step
	}
	if req.Factor > 0 {
		set.Factor = req.Factor
	}
	if req.MaxProbes > 0 {
		set.MaxProbes = req.MaxProbes
	}

	bracket, err := rootfind.FindBracket(f, req.X, set)
	if err != nil {
		if errors.Is(err, rootfind.ErrNoBracket) {
			s.respondJSON(w, http.StatusOK, bracketResponse{Found: false, Detail: err.Error()})
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, bracketResponse{
		Found: true,
		Low:   &bracket.Low,
		High:  &bracket.High,
	})
}

// handleFunctions lists the catalog functions available for solving.
func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"functions": catalog.Names(),
	})
}

// handleMethods lists the available solvers.
func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"methods": Methods,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.logger.Warn("request rejected",
		zap.Int("status", status),
		zap.String("message", message),
	)
	s.respondJSON(w, status, map[string]string{"error": message})
}
