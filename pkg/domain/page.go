package domain

// HomePage is the landing view: upcoming grands prix, the latest meeting, latest news and top drivers
type HomePage struct {
	NextRace       *RaceEvent   `json:"next_race,omitempty"`
	UpcomingRaces  []RaceEvent  `json:"upcoming_races"`
	LatestMeeting  *RaceEvent   `json:"latest_meeting,omitempty"`
	LatestSessions []Session    `json:"latest_sessions"`
	News           []Article    `json:"news"`
	TopDrivers     []DriverCard `json:"top_drivers"`
}

// NewsPage is a list of articles of a single kind
type NewsPage struct {
	Kind     NewsKind  `json:"kind"`
	Articles []Article `json:"articles"`
	Fallback bool      `json:"fallback"`
}

// DriversPage is the grid overview
type DriversPage struct {
	Champion DriverCard   `json:"champion"`
	Drivers  []DriverCard `json:"drivers"`
	Teams    []TeamGroup  `json:"teams"`
}

// CalendarPage lists race events of a season with derived status
type CalendarPage struct {
	Year      int         `json:"year"`
	Events    []RaceEvent `json:"events"`
	Completed int         `json:"completed"`
	Remaining int         `json:"remaining"`
}

// ResultRowView is a result row decorated for display
type ResultRowView struct {
	ResultRow
	TeamColor    string `json:"team_color"`
	PointsBadge  string `json:"points_badge"`
	TimeOrStatus string `json:"time_or_status"`
	Top          int    `json:"top,omitempty"` // 1-3 for podium finishers, 0 otherwise
}

// RaceSummary identifies a race in the race selector
type RaceSummary struct {
	Season string `json:"season"`
	Round  string `json:"round"`
	Name   string `json:"name"`
	Date   string `json:"date"`
}

// ResultsPage shows one selected race out of a season
type ResultsPage struct {
	Year       string          `json:"year"`
	Races      []RaceSummary   `json:"races"`
	Selected   *Race           `json:"selected,omitempty"`
	Podium     []PodiumEntry   `json:"podium"`
	Rows       []ResultRowView `json:"rows"`
	FastestLap *ResultRowView  `json:"fastest_lap,omitempty"`
}

// StandingsPage holds both championships
type StandingsPage struct {
	Drivers      []DriverStanding      `json:"drivers"`
	Constructors []ConstructorStanding `json:"constructors"`
}
