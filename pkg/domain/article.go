package domain

// Article represents a single news item parsed from a syndication feed.
// ID is positional and only unique within one parse call.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pub_date"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
}

// NewsKind selects which news feed to read
type NewsKind string

const (
	NewsLatest    NewsKind = "latest"
	NewsTechnical NewsKind = "technical"
)
