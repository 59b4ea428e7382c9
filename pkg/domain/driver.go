package domain

// DefaultTeamColor is used whenever a team colour is missing or malformed
const DefaultTeamColor = "ffffff"

// DriverRecord represents a driver on the current grid.
// TeamColor is always exactly six hex characters without a leading '#'.
type DriverRecord struct {
	Number      int    `json:"number"`
	FullName    string `json:"full_name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	Acronym     string `json:"acronym"`
	TeamName    string `json:"team_name"`
	TeamColor   string `json:"team_color"`
	CountryCode string `json:"country_code,omitempty"`
	HeadshotURL string `json:"headshot_url,omitempty"`
	ImageURL    string `json:"image_url"`
}

// DriverCard is the display projection of a driver
type DriverCard struct {
	Name        string `json:"name"`
	Acronym     string `json:"acronym"`
	Team        string `json:"team"`
	TeamColor   string `json:"team_color"`
	ImageURL    string `json:"image_url"`
	CountryCode string `json:"country_code,omitempty"`
}

// TeamGroup lists drivers of a single team
type TeamGroup struct {
	Name      string   `json:"name"`
	TeamColor string   `json:"team_color"`
	Drivers   []string `json:"drivers"`
}
