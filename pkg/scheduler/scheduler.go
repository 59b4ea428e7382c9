// Package scheduler runs background workers of the fetch log: asynchronous recording of
// upstream fetches and periodic retention cleanup.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/apexchronicle/apex/pkg/domain"
)

//go:generate moq -out mocks/fetch_store.go -pkg mocks -skip-ensure -fmt goimports . FetchStore

// FetchStore persists fetch records
type FetchStore interface {
	Record(ctx context.Context, rec *domain.FetchRecord) error
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Store           FetchStore
	MaxAge          time.Duration // records older than this are pruned
	CleanupInterval time.Duration // how often to prune
	QueueSize       int           // pending records, the rest is dropped
	MaxWorkers      int           // concurrent writers
}

// Scheduler records fetches in the background and keeps the fetch log bounded
type Scheduler struct {
	store           FetchStore
	records         chan domain.FetchRecord
	maxAge          time.Duration
	cleanupInterval time.Duration
	maxWorkers      int
	now             func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.MaxAge == 0 {
		params.MaxAge = 7 * 24 * time.Hour
	}
	if params.CleanupInterval == 0 {
		params.CleanupInterval = time.Hour
	}
	if params.QueueSize == 0 {
		params.QueueSize = 100
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 2
	}

	return &Scheduler{
		store:           params.Store,
		records:         make(chan domain.FetchRecord, params.QueueSize),
		maxAge:          params.MaxAge,
		cleanupInterval: params.CleanupInterval,
		maxWorkers:      params.MaxWorkers,
		now:             time.Now,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(2)
	go s.recordWorker(ctx)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with max age %v, cleanup interval %v", s.maxAge, s.cleanupInterval)
}

// Stop gracefully stops the scheduler, records already queued are written
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RecordFetch queues a fetch record without blocking the caller. Records are dropped when the queue is full.
func (s *Scheduler) RecordFetch(_ context.Context, rec domain.FetchRecord) {
	if rec.Error != "" {
		lgr.Printf("[DEBUG] %s fetch of %s failed: %s", rec.Source, rec.URL, rec.Error)
	}
	select {
	case s.records <- rec:
	default:
		lgr.Printf("[WARN] fetch log queue is full, dropped record of %s", rec.URL)
	}
}

// recordWorker writes queued records with up to maxWorkers concurrent writers
func (s *Scheduler) recordWorker(ctx context.Context) {
	defer s.wg.Done()

	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	writeCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			s.drain(writeCtx)
			_ = g.Wait()
			return
		case rec := <-s.records:
			g.Go(func() error {
				s.write(writeCtx, rec)
				return nil
			})
		}
	}
}

// drain writes records left in the queue
func (s *Scheduler) drain(ctx context.Context) {
	for {
		select {
		case rec := <-s.records:
			s.write(ctx, rec)
		default:
			return
		}
	}
}

func (s *Scheduler) write(ctx context.Context, rec domain.FetchRecord) {
	if err := s.store.Record(ctx, &rec); err != nil {
		lgr.Printf("[WARN] failed to record fetch of %s: %v", rec.URL, err)
	}
}

// cleanupWorker periodically prunes old records
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	// run immediately on start
	s.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup(ctx)
		}
	}
}

func (s *Scheduler) cleanup(ctx context.Context) {
	cutoff := s.now().Add(-s.maxAge)
	deleted, err := s.store.Prune(ctx, cutoff)
	if err != nil {
		lgr.Printf("[ERROR] failed to prune fetch log: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] pruned %d fetch records older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
