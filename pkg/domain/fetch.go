package domain

import "time"

// FetchRecord describes a single upstream GET
type FetchRecord struct {
	ID         int64         `json:"id"`
	Source     string        `json:"source"`
	URL        string        `json:"url"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
	FetchedAt  time.Time     `json:"fetched_at"`
}

// FetchSummary aggregates fetch records of a single source
type FetchSummary struct {
	Source    string    `json:"source"`
	Total     int       `json:"total"`
	Failed    int       `json:"failed"`
	LastFetch time.Time `json:"last_fetch"`
}
