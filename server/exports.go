package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/apexchronicle/apex/pkg/calendar"
)

// rssHandler re-exports a news list as RSS 2.0, /rss?kind=technical for the technical list
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	q, err := newsQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	news, _, err := s.pages.News(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rss, err := s.generator.GenerateRSS(news.Articles, news.Kind)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// icsHandler exports the race calendar of a year as iCalendar
func (s *Server) icsHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year <= 0 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	cal, warnings, err := s.pages.Calendar(r.Context(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(warnings) > 0 && len(cal.Events) == 0 {
		// an empty calendar would wipe subscribers' copies
		http.Error(w, "calendar is not available", http.StatusBadGateway)
		return
	}

	ics := calendar.Export(fmt.Sprintf("Formula 1 %d", year), cal.Events, time.Now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=f1-%d.ics", year))
	if _, err := w.Write([]byte(ics)); err != nil {
		log.Printf("[ERROR] failed to write calendar response: %v", err)
	}
}

// opmlHandler lists the upstream news feeds as OPML
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := s.generator.GenerateOPML(s.sources)
	if err != nil {
		log.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	if _, err := w.Write([]byte(opml)); err != nil {
		log.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}
