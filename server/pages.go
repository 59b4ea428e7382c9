package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/page"
)

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, s.pages.Home, page.NoParam{})
}

func (s *Server) driversHandler(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, s.pages.Drivers, page.NoParam{})
}

func (s *Server) standingsHandler(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, s.pages.Standings, page.NoParam{})
}

// newsHandler serves /api/v1/news?kind=latest|technical&limit=N
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := newsQuery(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	servePage(w, r, s.pages.News, q)
}

// calendarHandler serves /api/v1/calendar?year=N, the configured season by default
func (s *Server) calendarHandler(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year", s.pages.Season())
	if err != nil || year <= 0 {
		renderError(w, r, fmt.Errorf("invalid year"), http.StatusBadRequest)
		return
	}
	servePage(w, r, s.pages.Calendar, year)
}

// resultsHandler serves /api/v1/results?year=N&round=M, the current season and its last race by default
func (s *Server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	q := page.ResultsQuery{Year: r.URL.Query().Get("year"), Round: r.URL.Query().Get("round")}
	if q.Year != "" && !isNumber(q.Year) && q.Year != "current" {
		renderError(w, r, fmt.Errorf("invalid year"), http.StatusBadRequest)
		return
	}
	if q.Round != "" && !isNumber(q.Round) {
		renderError(w, r, fmt.Errorf("invalid round"), http.StatusBadRequest)
		return
	}
	servePage(w, r, s.pages.Results, q)
}

// servePage runs a page through its lifecycle and renders the settled snapshot. Every request
// gets its own view, concurrent requests never see ErrBusy.
// Loaders fail only on invalid parameters, so a failed page is a bad request.
func servePage[P, T any](w http.ResponseWriter, r *http.Request, load func(context.Context, P) (T, []string, error), param P) {
	snap, err := page.NewView[P, T](load).Load(r.Context(), param)
	if err != nil {
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	code := http.StatusOK
	if snap.State == page.Failed {
		code = http.StatusBadRequest
	}
	renderJSON(w, r, code, snap)
}

func newsQuery(r *http.Request) (page.NewsQuery, error) {
	q := page.NewsQuery{Kind: domain.NewsKind(r.URL.Query().Get("kind"))}
	switch q.Kind {
	case "", domain.NewsLatest, domain.NewsTechnical:
	default:
		return page.NewsQuery{}, fmt.Errorf("invalid kind %q", q.Kind)
	}

	limit, err := intParam(r, "limit", 0)
	if err != nil || limit < 0 {
		return page.NewsQuery{}, fmt.Errorf("invalid limit")
	}
	q.Limit = limit
	return q, nil
}

func isNumber(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}
