package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/upstream/mocks"
)

func newRecorder() *mocks.RecorderMock {
	return &mocks.RecorderMock{RecordFetchFunc: func(ctx context.Context, rec domain.FetchRecord) {}}
}

func TestClient_Get(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "apex-test", r.Header.Get("User-Agent"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`[{"a":1}]`))
		}))
		defer ts.Close()

		rec := newRecorder()
		c := New(Opts{Source: "test", UserAgent: "apex-test", Timeout: time.Second, Recorder: rec})
		body, err := c.Get(context.Background(), ts.URL+"/x")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"a":1}]`, string(body))

		require.Len(t, rec.RecordFetchCalls(), 1)
		assert.Equal(t, "test", rec.RecordFetchCalls()[0].Rec.Source)
		assert.Equal(t, ts.URL+"/x", rec.RecordFetchCalls()[0].Rec.URL)
		assert.Equal(t, http.StatusOK, rec.RecordFetchCalls()[0].Rec.StatusCode)
		assert.Empty(t, rec.RecordFetchCalls()[0].Rec.Error)
	})

	t.Run("bad status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer ts.Close()

		rec := newRecorder()
		c := New(Opts{Source: "test", Recorder: rec})
		_, err := c.Get(context.Background(), ts.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStatus)
		assert.Contains(t, err.Error(), "502")

		require.Len(t, rec.RecordFetchCalls(), 1)
		assert.Equal(t, http.StatusBadGateway, rec.RecordFetchCalls()[0].Rec.StatusCode)
		assert.NotEmpty(t, rec.RecordFetchCalls()[0].Rec.Error)
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		c := New(Opts{Source: "test", Timeout: 50 * time.Millisecond})
		_, err := c.Get(context.Background(), ts.URL)
		require.Error(t, err)
	})

	t.Run("browser headers and custom accept", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/rss+xml", r.Header.Get("Accept"))
			assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
			assert.NotEmpty(t, r.Header.Get("Accept-Language"))
			_, _ = w.Write([]byte("<rss/>"))
		}))
		defer ts.Close()

		c := New(Opts{Source: "relay", Accept: "application/rss+xml", Browser: true})
		body, err := c.Get(context.Background(), ts.URL)
		require.NoError(t, err)
		assert.Equal(t, "<rss/>", string(body))
	})

	t.Run("invalid url", func(t *testing.T) {
		c := New(Opts{Source: "test"})
		_, err := c.Get(context.Background(), "::bad")
		require.Error(t, err)
	})
}
