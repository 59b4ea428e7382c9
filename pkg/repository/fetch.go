package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/apexchronicle/apex/pkg/domain"
)

// FetchRepository stores records of upstream requests
type FetchRepository struct {
	db *sqlx.DB
}

// fetchRow is the database representation of domain.FetchRecord, times are unix milliseconds
type fetchRow struct {
	ID         int64  `db:"id"`
	Source     string `db:"source"`
	URL        string `db:"url"`
	StatusCode int    `db:"status_code"`
	DurationMs int64  `db:"duration_ms"`
	Error      string `db:"error"`
	FetchedAt  int64  `db:"fetched_at"`
}

type summaryRow struct {
	Source    string `db:"source"`
	Total     int    `db:"total"`
	Failed    int    `db:"failed"`
	LastFetch int64  `db:"last_fetch"`
}

// NewFetchRepository creates a new fetch repository
func NewFetchRepository(db *sqlx.DB) *FetchRepository {
	return &FetchRepository{db: db}
}

// Record inserts a fetch record and sets its ID
func (r *FetchRepository) Record(ctx context.Context, rec *domain.FetchRecord) error {
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now()
	}
	row := fetchRow{
		Source:     rec.Source,
		URL:        rec.URL,
		StatusCode: rec.StatusCode,
		DurationMs: rec.Duration.Milliseconds(),
		Error:      rec.Error,
		FetchedAt:  rec.FetchedAt.UnixMilli(),
	}

	query := `
		INSERT INTO fetch_log (source, url, status_code, duration_ms, error, fetched_at)
		VALUES (:source, :url, :status_code, :duration_ms, :error, :fetched_at)
	`
	return retryOnLock(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("record fetch: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		rec.ID = id
		return nil
	})
}

// Recent returns up to limit most recent records, newest first
func (r *FetchRepository) Recent(ctx context.Context, limit int) ([]domain.FetchRecord, error) {
	query := `
		SELECT id, source, url, status_code, duration_ms, error, fetched_at
		FROM fetch_log
		ORDER BY fetched_at DESC, id DESC
		LIMIT ?
	`
	var rows []fetchRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get recent fetches: %w", err)
	}

	res := make([]domain.FetchRecord, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// Summary returns per-source totals ordered by source name
func (r *FetchRepository) Summary(ctx context.Context) ([]domain.FetchSummary, error) {
	query := `
		SELECT source,
		       COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN error != '' THEN 1 ELSE 0 END), 0) AS failed,
		       MAX(fetched_at) AS last_fetch
		FROM fetch_log
		GROUP BY source
		ORDER BY source
	`
	var rows []summaryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get fetch summary: %w", err)
	}

	res := make([]domain.FetchSummary, len(rows))
	for i, row := range rows {
		res[i] = domain.FetchSummary{
			Source:    row.Source,
			Total:     row.Total,
			Failed:    row.Failed,
			LastFetch: time.UnixMilli(row.LastFetch),
		}
	}
	return res, nil
}

// Prune deletes records fetched before the given time and returns the number of deleted records
func (r *FetchRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := retryOnLock(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM fetch_log WHERE fetched_at < ?", before.UnixMilli())
		if err != nil {
			return fmt.Errorf("prune fetches: %w", err)
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		return nil
	})
	return deleted, err
}

func (f fetchRow) toDomain() domain.FetchRecord {
	return domain.FetchRecord{
		ID:         f.ID,
		Source:     f.Source,
		URL:        f.URL,
		StatusCode: f.StatusCode,
		Duration:   time.Duration(f.DurationMs) * time.Millisecond,
		Error:      f.Error,
		FetchedAt:  time.UnixMilli(f.FetchedAt),
	}
}
