package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/apexchronicle/apex/pkg/domain"
)

// Generator creates RSS and OPML documents from articles and feed sources
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed of the given articles
func (g *Generator) GenerateRSS(articles []domain.Article, kind domain.NewsKind) (string, error) {
	title := "Apex Chronicle - Latest F1 News"
	if kind == domain.NewsTechnical {
		title = "Apex Chronicle - Technical F1 News"
	}

	selfLink := g.baseURL + "/rss"
	if kind != "" && kind != domain.NewsLatest {
		selfLink = fmt.Sprintf("%s/rss?kind=%s", g.baseURL, kind)
	}

	links := make(map[string]int, len(articles))
	for _, a := range articles {
		links[a.Link]++
	}
	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a, links[a.Link] == 1))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Formula 1 news, race calendar and results",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts an article to an RSS item. A link shared with other items
// is not a permalink, the guid is made unique with the article id then.
func (g *Generator) convertToRSSItem(a domain.Article, uniqueLink bool) *RSSItem {
	item := &RSSItem{
		Title:       a.Title,
		Link:        a.Link,
		Description: a.Description,
		PubDate:     a.PubDate,
	}
	switch {
	case a.Link != "" && uniqueLink:
		item.GUID = &RSSGUID{Value: a.Link, IsPermaLink: "true"}
	case a.Link != "":
		item.GUID = &RSSGUID{Value: a.Link + "#" + a.ID, IsPermaLink: "false"}
	}
	if a.Category != "" {
		item.Categories = []string{a.Category}
	}
	if a.ImageURL != "" {
		item.Enclosure = &RSSEnclosure{URL: a.ImageURL, Type: imageType(a.ImageURL), Length: "0"}
	}
	return item
}

// imageType guesses the mime type from the URL extension
func imageType(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if t := mime.TypeByExtension(path.Ext(u)); t != "" {
		return t
	}
	return "image/jpeg"
}

// GenerateOPML creates an OPML file listing the upstream news feeds
func (g *Generator) GenerateOPML(sources Sources) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	// stable order: latest first, then technical
	outlines := make([]outline, 0, len(sources))
	for _, kind := range []domain.NewsKind{domain.NewsLatest, domain.NewsTechnical} {
		u, ok := sources[kind]
		if !ok || u == "" {
			continue
		}
		name := fmt.Sprintf("F1 %s news", kind)
		outlines = append(outlines, outline{Text: name, Title: name, Type: "rss", XMLUrl: u})
	}

	doc := opml{
		Version: "2.0",
		Head: head{
			Title:       "Apex Chronicle Feed Sources",
			DateCreated: time.Now().Format(time.RFC1123Z),
		},
		Body: body{
			Outlines: outlines,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}

	return xml.Header + string(output), nil
}
