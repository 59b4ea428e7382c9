package derive

import (
	"strings"

	"github.com/apexchronicle/apex/pkg/domain"
)

// TeamColor normalizes a team colour to exactly six hex characters without a leading '#'.
// Missing or malformed values fall back to domain.DefaultTeamColor.
func TeamColor(c string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(c) != 6 {
		return domain.DefaultTeamColor
	}
	for i := 0; i < len(c); i++ {
		if !isHex(c[i]) {
			return domain.DefaultTeamColor
		}
	}
	return c
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
