package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultFetchesLimit = 50
	maxFetchesLimit     = 500
)

// statusHandler returns server status with per-source fetch statistics
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"season":  s.pages.Season(),
		"time":    time.Now().UTC(),
	}

	summary, err := s.fetchLog.Summary(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to get fetch summary: %v", err)
	} else {
		status["sources"] = summary
	}
	renderJSON(w, r, http.StatusOK, status)
}

// fetchesHandler returns the most recent upstream fetches
func (s *Server) fetchesHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultFetchesLimit)
	if err != nil || limit <= 0 {
		renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
		return
	}
	limit = min(limit, maxFetchesLimit)

	records, err := s.fetchLog.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get recent fetches: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, records)
}

// intParam reads an integer query parameter, def when absent
func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
