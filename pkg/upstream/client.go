// Package upstream provides the read-only HTTP GET used by all third-party data clients.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apexchronicle/apex/pkg/domain"
)

//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// maxBody limits the size of a single upstream response
const maxBody = 10 * 1024 * 1024

// ErrStatus is returned for any non-200 upstream response
var ErrStatus = errors.New("unexpected status code")

// Recorder receives a record of every upstream request
type Recorder interface {
	RecordFetch(ctx context.Context, rec domain.FetchRecord)
}

// Opts configures a Client
type Opts struct {
	Source     string        // name of the upstream service, used in fetch records
	UserAgent  string        // user agent header
	Accept     string        // accept header, defaults to application/json
	Timeout    time.Duration // per-request timeout, zero means no timeout
	Browser    bool          // send browser-like headers
	Recorder   Recorder      // optional fetch recorder
	HTTPClient *http.Client  // optional http client, used as is
}

// Client performs GET requests against a single upstream service
type Client struct {
	Opts
	client *http.Client
}

// New creates a new upstream client
func New(opts Opts) *Client {
	if opts.Accept == "" {
		opts.Accept = "application/json"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{Opts: opts, client: client}
}

// Get retrieves the body of the given URL. Any status other than 200 is an error.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	started := time.Now()
	body, code, err := c.get(ctx, url)

	if c.Recorder != nil {
		rec := domain.FetchRecord{
			Source:     c.Source,
			URL:        url,
			StatusCode: code,
			Duration:   time.Since(started),
			FetchedAt:  started,
		}
		if err != nil {
			rec.Error = err.Error()
		}
		c.Recorder.RecordFetch(context.WithoutCancel(ctx), rec)
	}

	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) (body []byte, code int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", c.Accept)
	if c.Browser {
		addBrowserHeaders(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}
