package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/feed"
	"github.com/apexchronicle/apex/pkg/page"
	"github.com/apexchronicle/apex/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return listen, 30 * time.Second
		},
	}
}

// testServer creates a server with the given pages and an empty fetch log
func testServer(t *testing.T, pages *mocks.PagesMock) *Server {
	t.Helper()
	fetchLog := &mocks.FetchLogMock{
		RecentFunc: func(ctx context.Context, limit int) ([]domain.FetchRecord, error) {
			return []domain.FetchRecord{}, nil
		},
		SummaryFunc: func(ctx context.Context) ([]domain.FetchSummary, error) {
			return []domain.FetchSummary{}, nil
		},
	}
	return New(testConfig(":8080"), pages, fetchLog, Opts{
		Version: "test",
		BaseURL: "http://localhost:8080",
		Sources: feed.Sources{
			domain.NewsLatest:    "https://www.formula1.com/en/latest/all.xml",
			domain.NewsTechnical: "https://www.autosport.com/rss/f1/news/",
		},
	})
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.PagesMock{}, &mocks.FetchLogMock{}, Opts{Version: "1.0.0", Debug: true})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.NotNil(t, srv.generator)
	assert.NotNil(t, srv.Handler())
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), &mocks.PagesMock{}, &mocks.FetchLogMock{}, Opts{Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	// shutdown server
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Routes(t *testing.T) {
	pages := &mocks.PagesMock{
		SeasonFunc: func() int { return 2025 },
		HomeFunc: func(ctx context.Context, p page.NoParam) (domain.HomePage, []string, error) {
			return domain.HomePage{UpcomingRaces: []domain.RaceEvent{}, News: []domain.Article{}, TopDrivers: []domain.DriverCard{}}, nil, nil
		},
		DriversFunc: func(ctx context.Context, p page.NoParam) (domain.DriversPage, []string, error) {
			return domain.DriversPage{}, nil, nil
		},
		StandingsFunc: func(ctx context.Context, p page.NoParam) (domain.StandingsPage, []string, error) {
			return domain.StandingsPage{}, nil, nil
		},
	}
	ts := httptest.NewServer(testServer(t, pages).Handler())
	defer ts.Close()

	for _, path := range []string{"/ping", "/api/v1/status", "/api/v1/fetches", "/api/v1/home", "/api/v1/drivers", "/api/v1/standings", "/opml"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "apex", resp.Header.Get("App-Name"))
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/unknown")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	renderJSON(w, req, http.StatusCreated, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "value", resp["key"])
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "with error", err: errors.New("something went wrong"), want: "something went wrong"},
		{name: "nil error", err: nil, want: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

			renderError(w, req, tt.err, http.StatusBadRequest)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp["error"])
		})
	}
}
