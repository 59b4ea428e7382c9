// Package feed parses syndication feeds into articles and re-exports them as RSS.
package feed

import (
	"strconv"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/apexchronicle/apex/pkg/domain"
)

// Parse converts raw feed markup (RSS, Atom or JSON feed) into articles in document order.
// Unparseable input yields an empty slice, never an error. Article IDs are positional
// ("news-0", "news-1", ...) and only unique within a single call.
func Parse(raw string) []domain.Article {
	parsed, err := gofeed.NewParser().ParseString(raw)
	if err != nil || parsed == nil {
		return []domain.Article{}
	}

	res := make([]domain.Article, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		if item == nil {
			continue
		}
		article := domain.Article{
			ID:          "news-" + strconv.Itoa(i),
			Title:       Clean(item.Title),
			Description: Clean(item.Description),
			Link:        item.Link,
			PubDate:     item.Published,
			ImageURL:    imageURL(item),
		}
		if len(item.Categories) > 0 {
			article.Category = item.Categories[0]
		}
		res = append(res, article)
	}
	return res
}

// Limit keeps the first n articles; n <= 0 keeps all of them
func Limit(articles []domain.Article, n int) []domain.Article {
	if n <= 0 || n >= len(articles) {
		return articles
	}
	return articles[:n]
}

// imageURL prefers an embedded media reference and falls back to the first enclosure
func imageURL(item *gofeed.Item) string {
	if u := mediaURL(item.Extensions); u != "" {
		return u
	}
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

func mediaURL(exts ext.Extensions) string {
	media, ok := exts["media"]
	if !ok {
		return ""
	}
	for _, c := range media["content"] {
		if u := c.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}
