package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexchronicle/apex/pkg/domain"
)

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name   string
		driver domain.DriverRecord
		want   string
	}{
		{
			name:   "rookie regardless of team",
			driver: domain.DriverRecord{Acronym: "ANT", TeamName: "Andretti Cadillac", FamilyName: "Antonelli"},
			want:   "https://placehold.co/600x600/e10600/ffffff.png?text=ANT",
		},
		{
			name:   "rookie at mercedes",
			driver: domain.DriverRecord{Acronym: "ANT", TeamName: "Mercedes", FamilyName: "Antonelli"},
			want:   "https://placehold.co/600x600/e10600/ffffff.png?text=ANT",
		},
		{
			name:   "special team",
			driver: domain.DriverRecord{Acronym: "PER", TeamName: "Andretti Cadillac", FamilyName: "Perez"},
			want:   "https://placehold.co/600x600/D12A38/ffffff.png?text=PER",
		},
		{
			name:   "cdn image",
			driver: domain.DriverRecord{Acronym: "VER", TeamName: "Red Bull Racing", FamilyName: "Verstappen"},
			want:   "https://media.formula1.com/d_driver_fallback_image.png/content/dam/fom-website/drivers/2024/Drivers/VERSTAPPEN.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImage(tt.driver))
		})
	}
}
