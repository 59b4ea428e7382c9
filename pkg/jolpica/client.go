// Package jolpica is a read-only client of the Ergast-compatible historical results service.
// Every response is wrapped in an MRData envelope; the payload is located by path and
// decoded into the typed records of this package, then normalized into domain records.
package jolpica

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/apexchronicle/apex/pkg/domain"
)

//go:generate moq -out mocks/getter.go -pkg mocks -skip-ensure -fmt goimports . Getter

// DefaultURL is the public service endpoint
const DefaultURL = "https://api.jolpi.ca/ergast/f1"

// Current selects the running season
const Current = "current"

// Last selects the last race run in a season
const Last = "last"

const (
	racesPath       = "MRData.RaceTable.Races"
	driverStandPath = "MRData.StandingsTable.StandingsLists.0.DriverStandings"
	constrStandPath = "MRData.StandingsTable.StandingsLists.0.ConstructorStandings"
)

// Getter retrieves raw bytes from a URL
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client calls the historical results service
type Client struct {
	getter  Getter
	baseURL string
}

// New creates a client for the given base URL
func New(getter Getter, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{getter: getter, baseURL: strings.TrimRight(baseURL, "/")}
}

// DriverStandings returns the current driver championship. A missing standings list gives an empty slice.
func (c *Client) DriverStandings(ctx context.Context) ([]domain.DriverStanding, error) {
	var standings []DriverStanding
	if err := c.get(ctx, "/current/driverStandings.json", driverStandPath, &standings); err != nil {
		return nil, fmt.Errorf("get driver standings: %w", err)
	}

	res := make([]domain.DriverStanding, 0, len(standings))
	for _, s := range standings {
		ds := domain.DriverStanding{
			Position:     s.Position,
			PositionText: s.PositionText,
			Points:       s.Points,
			Wins:         s.Wins,
			DriverCode:   s.Driver.Code,
			GivenName:    s.Driver.GivenName,
			FamilyName:   s.Driver.FamilyName,
			Nationality:  s.Driver.Nationality,
			Constructors: make([]string, 0, len(s.Constructors)),
		}
		for _, cs := range s.Constructors {
			ds.Constructors = append(ds.Constructors, cs.Name)
		}
		res = append(res, ds)
	}
	return res, nil
}

// ConstructorStandings returns the current constructor championship
func (c *Client) ConstructorStandings(ctx context.Context) ([]domain.ConstructorStanding, error) {
	var standings []ConstructorStanding
	if err := c.get(ctx, "/current/constructorStandings.json", constrStandPath, &standings); err != nil {
		return nil, fmt.Errorf("get constructor standings: %w", err)
	}

	res := make([]domain.ConstructorStanding, 0, len(standings))
	for _, s := range standings {
		res = append(res, domain.ConstructorStanding{
			Position:     s.Position,
			PositionText: s.PositionText,
			Points:       s.Points,
			Wins:         s.Wins,
			Name:         s.Constructor.Name,
			Nationality:  s.Constructor.Nationality,
		})
	}
	return res, nil
}

// RaceResults returns a single race of a season with results, as a slice empty when the round
// has none. Empty year means the current season, empty round means the last race run.
func (c *Client) RaceResults(ctx context.Context, year, round string) ([]domain.Race, error) {
	if year == "" {
		year = Current
	}
	if round == "" {
		round = Last
	}
	path := "/" + year + "/" + round + "/results.json"

	var races []Race
	if err := c.get(ctx, path, racesPath, &races); err != nil {
		return nil, fmt.Errorf("get race results %s: %w", year, err)
	}
	return ToRaces(races), nil
}

// LatestRaceResult returns the last race of the current season, false if none was run yet
func (c *Client) LatestRaceResult(ctx context.Context) (domain.Race, bool, error) {
	var races []Race
	if err := c.get(ctx, "/"+Current+"/"+Last+"/results.json", racesPath, &races); err != nil {
		return domain.Race{}, false, fmt.Errorf("get latest race result: %w", err)
	}
	if len(races) == 0 {
		return domain.Race{}, false, nil
	}
	return toRace(races[0]), true, nil
}

// Schedule returns all races of a season without results
func (c *Client) Schedule(ctx context.Context, year string) ([]domain.Race, error) {
	if year == "" {
		year = Current
	}
	var races []Race
	if err := c.get(ctx, "/"+year+".json", racesPath, &races); err != nil {
		return nil, fmt.Errorf("get schedule %s: %w", year, err)
	}
	return ToRaces(races), nil
}

// get retrieves path and decodes the array found at jsonPath into dst.
// A body without the path leaves dst untouched.
func (c *Client) get(ctx context.Context, path, jsonPath string, dst any) error {
	body, err := c.getter.Get(ctx, c.baseURL+path)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("invalid json response from %s", path)
	}

	payload := gjson.GetBytes(body, jsonPath)
	if !payload.Exists() {
		return nil
	}
	if !payload.IsArray() {
		return fmt.Errorf("unexpected %s type %s", jsonPath, payload.Type)
	}
	if err := json.Unmarshal([]byte(payload.Raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", jsonPath, err)
	}
	return nil
}

// ToRaces normalizes races and their result rows, order is kept
func ToRaces(races []Race) []domain.Race {
	res := make([]domain.Race, 0, len(races))
	for _, r := range races {
		res = append(res, toRace(r))
	}
	return res
}

func toRace(r Race) domain.Race {
	race := domain.Race{
		Season:      r.Season,
		Round:       r.Round,
		Name:        r.RaceName,
		CircuitName: r.Circuit.CircuitName,
		Locality:    r.Circuit.Location.Locality,
		Country:     r.Circuit.Location.Country,
		Date:        r.Date,
		Time:        r.Time,
	}
	if len(r.Results) == 0 {
		return race
	}

	race.Results = make([]domain.ResultRow, 0, len(r.Results))
	for _, rr := range r.Results {
		row := domain.ResultRow{
			Position:         rr.Position,
			PositionText:     rr.PositionText,
			Points:           rr.Points,
			Grid:             rr.Grid,
			Laps:             rr.Laps,
			Status:           rr.Status,
			DriverID:         rr.Driver.DriverID,
			DriverCode:       rr.Driver.Code,
			DriverGivenName:  rr.Driver.GivenName,
			DriverFamilyName: rr.Driver.FamilyName,
			ConstructorName:  rr.Constructor.Name,
		}
		if rr.Time != nil {
			row.Time = rr.Time.Time
		}
		if fl := rr.FastestLap; fl != nil {
			row.FastestLap = &domain.FastestLap{
				Rank:       fl.Rank,
				Lap:        fl.Lap,
				Time:       fl.Time.Time,
				AvgSpeed:   fl.AverageSpeed.Speed,
				SpeedUnits: fl.AverageSpeed.Units,
			}
		}
		race.Results = append(race.Results, row)
	}
	return race
}
