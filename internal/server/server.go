package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"Calcline/internal/config"
	"Calcline/internal/eval"
	"Calcline/internal/interpreter"
	l "Calcline/internal/logger"

	"github.com/google/uuid"
)

var logger *l.Logger

type runRequest struct {
	Source string `json:"source"`
}

type runResponse struct {
	Success   bool              `json:"success"`
	Results   []string          `json:"results"`
	Variables map[string]string `json:"variables"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

// sessionStore holds one evaluator per session. Each session is an
// independent evaluation stream with its own environment; the mutex
// serializes access so a session's environment only ever has one writer.
type sessionStore struct {
	mu         sync.Mutex
	evaluators map[string]*eval.Evaluator
}

func newSessionStore() *sessionStore {
	return &sessionStore{evaluators: map[string]*eval.Evaluator{}}
}

func (s *sessionStore) create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.evaluators[id] = eval.NewEvaluator()
	return id
}

func (s *sessionStore) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.evaluators))
	for id := range s.evaluators {
		ids = append(ids, id)
	}
	return ids
}

func (s *sessionStore) drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.evaluators[id]; !ok {
		return false
	}
	delete(s.evaluators, id)
	return true
}

// run executes source inside the session's environment while holding the
// store lock, keeping the single-writer contract.
func (s *sessionStore) run(id, source string) (*interpreter.RunReport, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluator, ok := s.evaluators[id]
	if !ok {
		return nil, false, nil
	}
	report, err := interpreter.RunWith(evaluator, source)
	return report, true, err
}

func (s *sessionStore) env(id string) (map[string]eval.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluator, ok := s.evaluators[id]
	if !ok {
		return nil, false
	}
	return evaluator.Env().Snapshot(), true
}

func StartServer(cfg config.Config) {
	logger = l.New("server", cfg.LogDir, cfg.Level())
	l.New("interpreter", cfg.LogDir, cfg.Level())

	server := &http.Server{Addr: cfg.ListenAddr, Handler: NewHandler()}
	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}

// NewHandler builds the HTTP routes. Split from StartServer so tests can
// mount the handler on httptest without binding a port.
func NewHandler() http.Handler {
	store := newSessionStore()
	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// POST /exec -> one-shot run with a fresh environment
	mux.HandleFunc("/exec", execHandler)

	// Sessions
	// POST /sessions                 -> create a session (returns id)
	// GET  /sessions                 -> list session ids
	mux.HandleFunc("/sessions", store.collectionHandler)

	// Resource-style handlers for session id and subpaths:
	// POST   /sessions/{id}/exec     -> evaluate in the session environment
	// GET    /sessions/{id}/env      -> dump the session environment
	// DELETE /sessions/{id}          -> drop the session
	mux.HandleFunc("/sessions/", store.resourceHandler)

	return mux
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// execHandler runs a source blob with a fresh environment on every call.
func execHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, ok := decodeRunRequest(w, r)
	if !ok {
		return
	}

	report, err := interpreter.Run(req.Source)
	if err != nil {
		logError("run failed: %v", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeReport(w, report)
}

func (s *sessionStore) collectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		id := s.create()
		logInfo("created session %s", id)
		writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id})
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ids())
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *sessionStore) resourceHandler(w http.ResponseWriter, r *http.Request) {
	// Expect paths of the form:
	//   /sessions/{id}
	//   /sessions/{id}/exec
	//   /sessions/{id}/env
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	id, subpath, _ := strings.Cut(path, "/")
	if id == "" {
		http.Error(w, "Session id required", http.StatusBadRequest)
		return
	}

	switch {
	case subpath == "" && r.Method == http.MethodDelete:
		if !s.drop(id) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case subpath == "exec" && r.Method == http.MethodPost:
		req, ok := decodeRunRequest(w, r)
		if !ok {
			return
		}

		report, found, err := s.run(id, req.Source)
		if !found {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logError("session %s run failed: %v", id, err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		writeReport(w, report)
	case subpath == "env" && r.Method == http.MethodGet:
		env, found := s.env(id)
		if !found {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, formatEnv(env))
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func decodeRunRequest(w http.ResponseWriter, r *http.Request) (runRequest, bool) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError("failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return runRequest{}, false
	}
	return req, true
}

func writeReport(w http.ResponseWriter, report *interpreter.RunReport) {
	results := make([]string, 0, len(report.Results))
	for _, result := range report.Results {
		results = append(results, result.String())
	}

	writeJSON(w, http.StatusOK, runResponse{
		Success:   true,
		Results:   results,
		Variables: formatEnv(report.Env),
	})
}

func formatEnv(env map[string]eval.Value) map[string]string {
	out := make(map[string]string, len(env))
	for name, value := range env {
		out[name] = value.String()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func logInfo(format string, v ...any) {
	if logger != nil {
		logger.Info(format, v...)
	}
}

func logError(format string, v ...any) {
	if logger != nil {
		logger.Error(format, v...)
	}
}
