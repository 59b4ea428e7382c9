package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	articles := Fallback(now)
	require.Len(t, articles, 5)

	ids := map[string]bool{}
	for i, a := range articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Description)
		assert.Equal(t, "https://www.formula1.com", a.Link)
		assert.Equal(t, "2026-03-01T10:30:00.000Z", a.PubDate)
		assert.NotEmpty(t, a.Category)
		assert.Empty(t, a.ImageURL)
		ids[a.ID] = true
		assert.Equal(t, "mock-"+string(rune('1'+i)), a.ID)
	}
	assert.Len(t, ids, 5)
}
