package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/scheduler/mocks"
)

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{Store: &mocks.FetchStoreMock{}})
	assert.Equal(t, 7*24*time.Hour, s.maxAge)
	assert.Equal(t, time.Hour, s.cleanupInterval)
	assert.Equal(t, 100, cap(s.records))
	assert.Equal(t, 2, s.maxWorkers)
}

func TestScheduler_RecordFetch(t *testing.T) {
	var stored atomic.Int32
	store := &mocks.FetchStoreMock{
		RecordFunc: func(ctx context.Context, rec *domain.FetchRecord) error {
			stored.Add(1)
			if rec.URL == "bad" {
				return errors.New("disk full")
			}
			return nil
		},
		PruneFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 0, nil
		},
	}

	s := NewScheduler(Params{Store: store, CleanupInterval: time.Hour})
	s.Start(context.Background())
	s.RecordFetch(context.Background(), domain.FetchRecord{Source: "openf1", URL: "https://api.openf1.org/v1/drivers"})
	s.RecordFetch(context.Background(), domain.FetchRecord{Source: "openf1", URL: "bad", Error: "timeout"})

	assert.Eventually(t, func() bool { return stored.Load() == 2 }, time.Second, 10*time.Millisecond)
	s.Stop()

	urls := []string{store.RecordCalls()[0].Rec.URL, store.RecordCalls()[1].Rec.URL}
	assert.ElementsMatch(t, []string{"https://api.openf1.org/v1/drivers", "bad"}, urls)
}

func TestScheduler_RecordFetchQueueFull(t *testing.T) {
	s := NewScheduler(Params{Store: &mocks.FetchStoreMock{}, QueueSize: 2})
	for i := 0; i < 5; i++ {
		s.RecordFetch(context.Background(), domain.FetchRecord{URL: "u"})
	}
	assert.Len(t, s.records, 2, "extra records are dropped, caller never blocks")
}

func TestScheduler_StopDrainsQueue(t *testing.T) {
	store := &mocks.FetchStoreMock{
		RecordFunc: func(ctx context.Context, rec *domain.FetchRecord) error {
			return ctx.Err()
		},
		PruneFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 0, nil
		},
	}
	s := NewScheduler(Params{Store: store, QueueSize: 10})
	for i := 0; i < 5; i++ {
		s.RecordFetch(context.Background(), domain.FetchRecord{URL: "u"})
	}

	s.Start(context.Background())
	s.Stop()
	assert.Len(t, store.RecordCalls(), 5)
	assert.Empty(t, s.records)
}

func TestScheduler_Cleanup(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store := &mocks.FetchStoreMock{
		PruneFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 3, nil
		},
	}

	s := NewScheduler(Params{Store: store, MaxAge: 24 * time.Hour, CleanupInterval: 20 * time.Millisecond})
	s.now = func() time.Time { return now }
	s.Start(context.Background())

	require.Eventually(t, func() bool { return len(store.PruneCalls()) >= 2 }, time.Second, 5*time.Millisecond,
		"runs on start and on every tick")
	s.Stop()

	assert.Equal(t, now.Add(-24*time.Hour), store.PruneCalls()[0].Before)
}

func TestScheduler_CleanupError(t *testing.T) {
	store := &mocks.FetchStoreMock{
		PruneFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 0, errors.New("locked")
		},
	}
	s := NewScheduler(Params{Store: store})
	s.cleanup(context.Background())
	assert.Len(t, store.PruneCalls(), 1)
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(Params{Store: &mocks.FetchStoreMock{}})
	s.Stop()
}
