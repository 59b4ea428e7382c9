package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"25", 25},
		{"0", 0},
		{"18.5", 18},
		{"0.5", 0},
		{"3rd", 3},
		{"  12", 12},
		{"-4", -4},
		{"+7", 7},
		{"DNF", 0},
		{"", 0},
		{"-", 0},
		{"R", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingInt(tt.in))
		})
	}
}

func TestTeamColor(t *testing.T) {
	assert.Equal(t, "3671C6", TeamColor("3671C6"))
	assert.Equal(t, "e8002d", TeamColor("#e8002d"))
	assert.Equal(t, "ffffff", TeamColor(""))
	assert.Equal(t, "ffffff", TeamColor("12345"))
	assert.Equal(t, "ffffff", TeamColor("zzzzzz"))
	assert.Equal(t, "ffffff", TeamColor("1234567"))
}
