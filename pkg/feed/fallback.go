package feed

import (
	"time"

	"github.com/apexchronicle/apex/pkg/domain"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Fallback returns the fixed set of articles shown when the news feed can't be read.
// All of them are dated now.
func Fallback(now time.Time) []domain.Article {
	date := now.UTC().Format(isoMillis)
	return []domain.Article{
		{
			ID:          "mock-1",
			Title:       "2026 F1 Season Preview: New Regulations Set to Shake Up the Grid",
			Description: "The 2026 Formula 1 season brings revolutionary new power unit regulations, with all teams unveiling completely redesigned cars.",
			Link:        "https://www.formula1.com",
			PubDate:     date,
			Category:    "Technical",
		},
		{
			ID:          "mock-2",
			Title:       "Driver Transfers: Hamilton at Ferrari as Antonelli Joins Mercedes",
			Description: "The 2026 grid sees major changes with Lewis Hamilton switching to Ferrari and young Italian Kimi Antonelli taking his seat at Mercedes.",
			Link:        "https://www.formula1.com",
			PubDate:     date,
			Category:    "Drivers",
		},
		{
			ID:          "mock-3",
			Title:       "Pre-Season Testing: What We Learned from Bahrain",
			Description: "Teams completed their first runs with 2026 machinery at the Sakhir circuit ahead of the season opener.",
			Link:        "https://www.formula1.com",
			PubDate:     date,
			Category:    "Testing",
		},
		{
			ID:          "mock-4",
			Title:       "New Power Units: 2026 Regulations Explained",
			Description: "A deep dive into the all-new power unit regulations that are transforming Formula 1 for the 2026 season and beyond.",
			Link:        "https://www.formula1.com",
			PubDate:     date,
			Category:    "Technical",
		},
		{
			ID:          "mock-5",
			Title:       "Calendar Confirmed: 24 Races Set for 2026 Season",
			Description: "FIA confirms the full 2026 race calendar featuring new venues and the return of classic circuits.",
			Link:        "https://www.formula1.com",
			PubDate:     date,
			Category:    "Calendar",
		},
	}
}
