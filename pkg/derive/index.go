package derive

import "github.com/apexchronicle/apex/pkg/domain"

// DriverIndex maps driver codes (acronyms) to driver records.
// It is read-only after BuildIndex; rebuild it when the roster changes.
type DriverIndex struct {
	byCode map[string]domain.DriverRecord
}

// BuildIndex builds a lookup keyed by acronym. When codes collide the later record wins.
func BuildIndex(drivers []domain.DriverRecord) DriverIndex {
	idx := DriverIndex{byCode: make(map[string]domain.DriverRecord, len(drivers))}
	for _, d := range drivers {
		idx.byCode[d.Acronym] = d
	}
	return idx
}

// Lookup returns the driver with the given code
func (x DriverIndex) Lookup(code string) (domain.DriverRecord, bool) {
	d, ok := x.byCode[code]
	return d, ok
}

// TeamColor returns the team colour of the driver with the given code, or the default colour
func (x DriverIndex) TeamColor(code string) string {
	if d, ok := x.byCode[code]; ok {
		return d.TeamColor
	}
	return domain.DefaultTeamColor
}

// Len returns the number of indexed drivers
func (x DriverIndex) Len() int {
	return len(x.byCode)
}
