package jolpica

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexchronicle/apex/pkg/jolpica/mocks"
)

const resultsJSON = `{"MRData":{"series":"f1","RaceTable":{"season":"2024","round":"24","Races":[{
  "season":"2024","round":"24","raceName":"Abu Dhabi Grand Prix","date":"2024-12-08","time":"13:00:00Z",
  "Circuit":{"circuitId":"yas_marina","circuitName":"Yas Marina Circuit","Location":{"locality":"Abu Dhabi","country":"UAE"}},
  "Results":[
    {"number":"4","position":"1","positionText":"1","points":"25","grid":"1","laps":"58","status":"Finished",
     "Driver":{"driverId":"norris","code":"NOR","givenName":"Lando","familyName":"Norris"},
     "Constructor":{"constructorId":"mclaren","name":"McLaren"},
     "Time":{"millis":"5224491","time":"1:26:33.291"},
     "FastestLap":{"rank":"4","lap":"50","Time":{"time":"1:26.532"},"AverageSpeed":{"units":"kph","speed":"219.718"}}},
    {"number":"55","position":"2","positionText":"2","points":"18","grid":"3","laps":"58","status":"Finished",
     "Driver":{"driverId":"sainz","code":"SAI","givenName":"Carlos","familyName":"Sainz"},
     "Constructor":{"constructorId":"ferrari","name":"Ferrari"},
     "Time":{"millis":"5230323","time":"+5.832"}},
    {"number":"20","position":"14","positionText":"14","points":"1","grid":"20","laps":"57","status":"+1 Lap",
     "Driver":{"driverId":"kevin_magnussen","code":"MAG","givenName":"Kevin","familyName":"Magnussen"},
     "Constructor":{"constructorId":"haas","name":"Haas F1 Team"},
     "FastestLap":{"rank":"1","lap":"56","Time":{"time":"1:25.637"},"AverageSpeed":{"units":"kph","speed":"222.015"}}}
  ]}]}}}`

const driverStandingsJSON = `{"MRData":{"StandingsTable":{"season":"2025","StandingsLists":[{"season":"2025","round":"12",
  "DriverStandings":[
    {"position":"1","positionText":"1","points":"234","wins":"5",
     "Driver":{"driverId":"piastri","code":"PIA","givenName":"Oscar","familyName":"Piastri","nationality":"Australian"},
     "Constructors":[{"constructorId":"mclaren","name":"McLaren","nationality":"British"}]},
    {"position":"2","positionText":"2","points":"226","wins":"4",
     "Driver":{"driverId":"norris","code":"NOR","givenName":"Lando","familyName":"Norris","nationality":"British"},
     "Constructors":[{"constructorId":"mclaren","name":"McLaren","nationality":"British"}]}
  ]}]}}}`

const constructorStandingsJSON = `{"MRData":{"StandingsTable":{"season":"2025","StandingsLists":[{"season":"2025","round":"12",
  "ConstructorStandings":[
    {"position":"1","positionText":"1","points":"460","wins":"9",
     "Constructor":{"constructorId":"mclaren","name":"McLaren","nationality":"British"}}
  ]}]}}}`

func getterFor(body string) *mocks.GetterMock {
	return &mocks.GetterMock{
		GetFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte(body), nil
		},
	}
}

func TestClient_RaceResults(t *testing.T) {
	getter := getterFor(resultsJSON)
	c := New(getter, "https://api.jolpi.ca/ergast/f1/")

	races, err := c.RaceResults(context.Background(), "2024", "24")
	require.NoError(t, err)
	require.Len(t, races, 1)
	require.Len(t, getter.GetCalls(), 1)
	assert.Equal(t, "https://api.jolpi.ca/ergast/f1/2024/24/results.json", getter.GetCalls()[0].URL)

	race := races[0]
	assert.Equal(t, "Abu Dhabi Grand Prix", race.Name)
	assert.Equal(t, "Yas Marina Circuit", race.CircuitName)
	assert.Equal(t, "Abu Dhabi", race.Locality)
	assert.Equal(t, "UAE", race.Country)
	require.Len(t, race.Results, 3)

	first := race.Results[0]
	assert.Equal(t, "NOR", first.DriverCode)
	assert.Equal(t, "McLaren", first.ConstructorName)
	assert.Equal(t, "1:26:33.291", first.Time)
	require.NotNil(t, first.FastestLap)
	assert.Equal(t, "4", first.FastestLap.Rank)
	assert.Equal(t, "219.718", first.FastestLap.AvgSpeed)

	assert.Nil(t, race.Results[1].FastestLap, "row without fastest lap")
	assert.Empty(t, race.Results[2].Time, "lapped car has no time")
	assert.Equal(t, "+1 Lap", race.Results[2].Status)
}

func TestClient_RaceResultsURL(t *testing.T) {
	tbl := []struct {
		year, round, want string
	}{
		{"", "", "https://api.jolpi.ca/ergast/f1/current/last/results.json"},
		{"2023", "", "https://api.jolpi.ca/ergast/f1/2023/last/results.json"},
		{"2023", "5", "https://api.jolpi.ca/ergast/f1/2023/5/results.json"},
	}
	for _, tt := range tbl {
		t.Run(tt.want, func(t *testing.T) {
			getter := getterFor(`{"MRData":{"RaceTable":{"Races":[]}}}`)
			races, err := New(getter, "").RaceResults(context.Background(), tt.year, tt.round)
			require.NoError(t, err)
			assert.Empty(t, races)
			assert.Equal(t, tt.want, getter.GetCalls()[0].URL)
		})
	}
}

func TestClient_LatestRaceResult(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		getter := getterFor(resultsJSON)
		race, ok, err := New(getter, "").LatestRaceResult(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "24", race.Round)
		assert.Equal(t, DefaultURL+"/current/last/results.json", getter.GetCalls()[0].URL)
	})

	t.Run("no races yet", func(t *testing.T) {
		_, ok, err := New(getterFor(`{"MRData":{"RaceTable":{"Races":[]}}}`), "").LatestRaceResult(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestClient_Schedule(t *testing.T) {
	getter := getterFor(`{"MRData":{"RaceTable":{"season":"2025","Races":[
		{"season":"2025","round":"1","raceName":"Australian Grand Prix","date":"2025-03-16","time":"04:00:00Z",
		 "Circuit":{"circuitName":"Albert Park Grand Prix Circuit","Location":{"locality":"Melbourne","country":"Australia"}}},
		{"season":"2025","round":"2","raceName":"Chinese Grand Prix","date":"2025-03-23",
		 "Circuit":{"circuitName":"Shanghai International Circuit","Location":{"locality":"Shanghai","country":"China"}}}]}}}`)

	races, err := New(getter, "").Schedule(context.Background(), "2025")
	require.NoError(t, err)
	require.Len(t, races, 2)
	assert.Equal(t, DefaultURL+"/2025.json", getter.GetCalls()[0].URL)
	assert.Equal(t, "Australian Grand Prix", races[0].Name)
	assert.Equal(t, "04:00:00Z", races[0].Time)
	assert.Empty(t, races[1].Time)
	assert.Nil(t, races[1].Results)
}

func TestClient_Standings(t *testing.T) {
	t.Run("drivers", func(t *testing.T) {
		standings, err := New(getterFor(driverStandingsJSON), "").DriverStandings(context.Background())
		require.NoError(t, err)
		require.Len(t, standings, 2)
		assert.Equal(t, "PIA", standings[0].DriverCode)
		assert.Equal(t, "234", standings[0].Points)
		assert.Equal(t, []string{"McLaren"}, standings[0].Constructors)
		assert.Equal(t, "British", standings[1].Nationality)
	})

	t.Run("constructors", func(t *testing.T) {
		standings, err := New(getterFor(constructorStandingsJSON), "").ConstructorStandings(context.Background())
		require.NoError(t, err)
		require.Len(t, standings, 1)
		assert.Equal(t, "McLaren", standings[0].Name)
		assert.Equal(t, "9", standings[0].Wins)
	})

	t.Run("empty standings list", func(t *testing.T) {
		body := `{"MRData":{"StandingsTable":{"season":"2026","StandingsLists":[]}}}`
		standings, err := New(getterFor(body), "").DriverStandings(context.Background())
		require.NoError(t, err)
		assert.Empty(t, standings)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("upstream", func(t *testing.T) {
		getter := &mocks.GetterMock{
			GetFunc: func(ctx context.Context, url string) ([]byte, error) {
				return nil, errors.New("timeout")
			},
		}
		_, err := New(getter, "").ConstructorStandings(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get constructor standings: timeout")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := New(getterFor("<html>gateway</html>"), "").Schedule(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid json")
	})

	t.Run("races not an array", func(t *testing.T) {
		_, err := New(getterFor(`{"MRData":{"RaceTable":{"Races":{}}}}`), "").RaceResults(context.Background(), "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected MRData.RaceTable.Races type")
	})
}
