package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wd, err := os.Getwd()
	require.NoError(t, err)
	opts := Opts{Config: filepath.Join(wd, "testdata", "test_config.yml")}

	done := make(chan error, 1)
	go func() { done <- run(ctx, opts) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18765/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		return err == nil && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	// upstreams are unreachable, the news page still serves the fallback set
	resp, err := http.Get("http://127.0.0.1:18765/api/v1/news")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap struct {
		State string `json:"state"`
		Data  struct {
			Fallback bool `json:"fallback"`
			Articles []struct {
				ID string `json:"id"`
			} `json:"articles"`
		} `json:"data"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "ready", snap.State)
	assert.True(t, snap.Data.Fallback)
	assert.Len(t, snap.Data.Articles, 5)
	assert.NotEmpty(t, snap.Warnings)

	// shutdown
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := loadConfig(Opts{})
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, "https://api.openf1.org/v1", cfg.Upstream.OpenF1URL)
	})

	t.Run("test config stays on loopback", func(t *testing.T) {
		t.Setenv("DB_PATH", t.TempDir())
		cfg, err := loadConfig(Opts{Config: filepath.Join("testdata", "test_config.yml")})
		require.NoError(t, err)
		up := cfg.Upstream
		for _, u := range []string{up.OpenF1URL, up.JolpicaURL, up.RelayURL, up.NewsURL, up.TechnicalURL} {
			assert.True(t, strings.HasPrefix(u, "http://127.0.0.1:1/"), "upstream %s is not local", u)
		}
	})

	t.Run("cli overrides", func(t *testing.T) {
		cfg, err := loadConfig(Opts{Listen: ":9999", DB: "file:override.db", Season: 2024})
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Listen)
		assert.Equal(t, "file:override.db", cfg.Database.DSN)
		assert.Equal(t, 2024, cfg.Upstream.Season)
	})
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
