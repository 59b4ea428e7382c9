package feed

import (
	"context"
	"fmt"
	"net/url"

	"github.com/apexchronicle/apex/pkg/domain"
)

//go:generate moq -out mocks/getter.go -pkg mocks -skip-ensure -fmt goimports . Getter

// Getter retrieves raw bytes from a URL
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Sources lists feed URLs per news kind
type Sources map[domain.NewsKind]string

// News reads feeds through a public URL-forwarding relay
type News struct {
	getter   Getter
	relayURL string
	sources  Sources
}

// NewNews creates a news reader. relayURL is a prefix the escaped feed URL is appended to.
func NewNews(getter Getter, relayURL string, sources Sources) *News {
	return &News{getter: getter, relayURL: relayURL, sources: sources}
}

// Fetch retrieves and parses the feed of the given kind
func (n *News) Fetch(ctx context.Context, kind domain.NewsKind) ([]domain.Article, error) {
	feedURL, ok := n.sources[kind]
	if !ok || feedURL == "" {
		return nil, fmt.Errorf("no feed configured for %q", kind)
	}

	body, err := n.getter.Get(ctx, n.RelayURL(feedURL))
	if err != nil {
		return nil, fmt.Errorf("fetch %s news: %w", kind, err)
	}
	return Parse(string(body)), nil
}

// RelayURL returns the relay address forwarding to feedURL
func (n *News) RelayURL(feedURL string) string {
	if n.relayURL == "" {
		return feedURL
	}
	return n.relayURL + url.QueryEscape(feedURL)
}

// Sources returns configured feeds
func (n *News) Sources() Sources {
	return n.sources
}
