package domain

// FastestLap holds fastest-lap details of a single result row
type FastestLap struct {
	Rank       string `json:"rank"`
	Lap        string `json:"lap"`
	Time       string `json:"time"`
	AvgSpeed   string `json:"avg_speed,omitempty"`
	SpeedUnits string `json:"speed_units,omitempty"`
}

// ResultRow is a single classified finisher of a race
type ResultRow struct {
	Position         string      `json:"position"`
	PositionText     string      `json:"position_text"`
	Points           string      `json:"points"`
	Grid             string      `json:"grid"`
	Laps             string      `json:"laps"`
	Status           string      `json:"status"`
	DriverID         string      `json:"driver_id"`
	DriverCode       string      `json:"driver_code"`
	DriverGivenName  string      `json:"driver_given_name"`
	DriverFamilyName string      `json:"driver_family_name"`
	ConstructorName  string      `json:"constructor_name"`
	Time             string      `json:"time,omitempty"`
	FastestLap       *FastestLap `json:"fastest_lap,omitempty"`
}

// PodiumEntry is a result row placed on the podium, in display order
type PodiumEntry struct {
	Place     int       `json:"place"`
	Row       ResultRow `json:"row"`
	TeamColor string    `json:"team_color"`
	ImageURL  string    `json:"image_url,omitempty"`
}

// Race is a historical race with its circuit and optional results
type Race struct {
	Season      string      `json:"season"`
	Round       string      `json:"round"`
	Name        string      `json:"name"`
	CircuitName string      `json:"circuit_name"`
	Locality    string      `json:"locality"`
	Country     string      `json:"country"`
	Date        string      `json:"date"`
	Time        string      `json:"time,omitempty"`
	Results     []ResultRow `json:"results,omitempty"`
}

// DriverStanding is a championship position of a driver
type DriverStanding struct {
	Position     string   `json:"position"`
	PositionText string   `json:"position_text"`
	Points       string   `json:"points"`
	Wins         string   `json:"wins"`
	DriverCode   string   `json:"driver_code"`
	GivenName    string   `json:"given_name"`
	FamilyName   string   `json:"family_name"`
	Nationality  string   `json:"nationality"`
	Constructors []string `json:"constructors"`
}

// ConstructorStanding is a championship position of a constructor
type ConstructorStanding struct {
	Position     string `json:"position"`
	PositionText string `json:"position_text"`
	Points       string `json:"points"`
	Wins         string `json:"wins"`
	Name         string `json:"name"`
	Nationality  string `json:"nationality"`
}
