package openf1

// Driver is a driver entry as returned by the drivers endpoint
type Driver struct {
	DriverNumber  int    `json:"driver_number"`
	BroadcastName string `json:"broadcast_name"`
	FullName      string `json:"full_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NameAcronym   string `json:"name_acronym"`
	TeamName      string `json:"team_name"`
	TeamColour    string `json:"team_colour"`
	CountryCode   string `json:"country_code"`
	HeadshotURL   string `json:"headshot_url"`
	SessionKey    int    `json:"session_key"`
	MeetingKey    int    `json:"meeting_key"`
}

// Meeting is a race weekend as returned by the meetings endpoint
type Meeting struct {
	MeetingKey          int    `json:"meeting_key"`
	MeetingName         string `json:"meeting_name"`
	MeetingOfficialName string `json:"meeting_official_name"`
	Location            string `json:"location"`
	CountryName         string `json:"country_name"`
	CountryCode         string `json:"country_code"`
	CountryFlag         string `json:"country_flag"`
	CircuitKey          int    `json:"circuit_key"`
	CircuitShortName    string `json:"circuit_short_name"`
	CircuitImage        string `json:"circuit_image"`
	CircuitType         string `json:"circuit_type"`
	DateStart           string `json:"date_start"`
	DateEnd             string `json:"date_end"`
	GMTOffset           string `json:"gmt_offset"`
	Year                int    `json:"year"`
}

// Session is a single session of a meeting
type Session struct {
	SessionKey       int    `json:"session_key"`
	SessionName      string `json:"session_name"`
	SessionType      string `json:"session_type"`
	MeetingKey       int    `json:"meeting_key"`
	Location         string `json:"location"`
	CountryName      string `json:"country_name"`
	CircuitShortName string `json:"circuit_short_name"`
	DateStart        string `json:"date_start"`
	DateEnd          string `json:"date_end"`
	Year             int    `json:"year"`
}
