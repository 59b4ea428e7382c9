package derive

import (
	"fmt"
	"strings"

	"github.com/apexchronicle/apex/pkg/domain"
)

const (
	placeholderURL = "https://placehold.co/600x600/%s/ffffff.png?text=%s"
	cdnURL         = "https://media.formula1.com/d_driver_fallback_image.png/content/dam/fom-website/drivers/%d/Drivers/%s.png"

	// newer seasons have no published media yet
	imageYear = 2024

	rookieAccent  = "e10600"
	specialTeam   = "Andretti Cadillac"
	specialAccent = "D12A38"
)

// rookies have no media in the reference year
var rookies = map[string]bool{
	"ANT": true, "DOO": true, "BOR": true, "HAD": true,
	"BEA": true, "HER": true, "AND": true, "LAW": true,
}

// ResolveImage returns the display image URL of a driver. Rules are evaluated in order:
// rookie acronyms get a placeholder, the special-case team gets its own placeholder,
// everyone else gets the CDN image named after the upper-cased family name.
// No network call is made; the caller handles images that fail to load.
func ResolveImage(d domain.DriverRecord) string {
	switch {
	case rookies[d.Acronym]:
		return fmt.Sprintf(placeholderURL, rookieAccent, d.Acronym)
	case d.TeamName == specialTeam:
		return fmt.Sprintf(placeholderURL, specialAccent, d.Acronym)
	default:
		return fmt.Sprintf(cdnURL, imageYear, strings.ToUpper(d.FamilyName))
	}
}
