// Package httpapi exposes the agent over HTTP: a JSON API plus a minimal
// browser page.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/calcagent/internal/application/agent"
	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// historyPageLimit caps how many entries the history endpoint returns.
const historyPageLimit = 10

// Server is the HTTP front end. It is a thin I/O loop: every request is
// handed to the agent's single entry point and the response forwarded.
type Server struct {
	address string
	port    int
	agent   *agent.Service
	history ports.HistoryRepository
	logger  ports.Logger
	server  *http.Server
}

// NewServer creates the HTTP server.
func NewServer(address string, port int, agentService *agent.Service, store ports.HistoryRepository, log ports.Logger) *Server {
	return &Server{
		address: address,
		port:    port,
		agent:   agentService,
		history: store,
		logger:  log,
	}
}

// CalculateRequest is the POST /calculate payload.
type CalculateRequest struct {
	Query string `json:"query"`
}

// CalculateResponse carries the agent's rendered answer.
type CalculateResponse struct {
	Result string `json:"result"`
}

// Handler builds the route table. Exposed separately from Start so tests
// can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /calculate", s.handleCalculate)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("POST /clear", s.handleClear)
	return s.withLogging(mux)
}

// Start begins serving HTTP requests and blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.logger.Info("starting web interface", map[string]interface{}{
		"address": s.address,
		"port":    s.port,
	})
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)
		s.logger.Info("request", map[string]interface{}{
			"id":       requestID,
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.Query == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no query provided"})
		return
	}
	result := s.agent.ProcessQuery(req.Query)
	s.writeJSON(w, http.StatusOK, CalculateResponse{Result: result})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.Recent(historyPageLimit)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]domain.HistoryEntry{"history": entries})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.agent.ClearHistory(); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeJSON encodes v to w. Encode errors usually mean the client hung up,
// which is worth a log line but nothing more.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("failed to write JSON response", map[string]interface{}{"error": err.Error()})
	}
}
