// Package openf1 is a read-only client of the live session/data service.
package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apexchronicle/apex/pkg/derive"
	"github.com/apexchronicle/apex/pkg/domain"
)

// DefaultURL is the public service endpoint
const DefaultURL = "https://api.openf1.org/v1"

// Latest is the session/meeting key selecting the most recent one
const Latest = "latest"

// Getter retrieves raw bytes from a URL
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client calls the live data service
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

// Meetings returns all meetings of the year as race events, in service order
func (c *Client) Meetings(ctx context.Context, year int) ([]domain.RaceEvent, error) {
	var meetings []Meeting
	if err := c.get(ctx, "meetings", url.Values{"year": {strconv.Itoa(year)}}, &meetings); err != nil {
		return nil, fmt.Errorf("get meetings %d: %w", year, err)
	}
	return toRaceEvents(meetings), nil
}

// LatestMeeting returns the most recent meeting, false if the service has none
func (c *Client) LatestMeeting(ctx context.Context) (domain.RaceEvent, bool, error) {
	var meetings []Meeting
	if err := c.get(ctx, "meetings", url.Values{"meeting_key": {Latest}}, &meetings); err != nil {
		return domain.RaceEvent{}, false, fmt.Errorf("get latest meeting: %w", err)
	}
	if len(meetings) == 0 {
		return domain.RaceEvent{}, false, nil
	}
	return toRaceEvent(meetings[0]), true, nil
}

// Sessions returns sessions filtered by meeting key and/or year, zero values are not sent
func (c *Client) Sessions(ctx context.Context, meetingKey, year int) ([]domain.Session, error) {
	params := url.Values{}
	if meetingKey != 0 {
		params.Set("meeting_key", strconv.Itoa(meetingKey))
	}
	if year != 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var sessions []Session
	if err := c.get(ctx, "sessions", params, &sessions); err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	res := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, domain.Session{
			Key:        s.SessionKey,
			MeetingKey: s.MeetingKey,
			Name:       s.SessionName,
			Type:       s.SessionType,
			Location:   s.Location,
			Country:    s.CountryName,
			DateStart:  parseTime(s.DateStart),
			DateEnd:    parseTime(s.DateEnd),
			Year:       s.Year,
		})
	}
	return res, nil
}

// Drivers returns the grid of a session, empty sessionKey means the latest session
func (c *Client) Drivers(ctx context.Context, sessionKey string) ([]domain.DriverRecord, error) {
	if sessionKey == "" {
		sessionKey = Latest
	}
	var drivers []Driver
	if err := c.get(ctx, "drivers", url.Values{"session_key": {sessionKey}}, &drivers); err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}
	return ToDriverRecords(drivers), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, dst any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	body, err := c.getter.Get(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// ToDriverRecords normalizes drivers: team colour validated, image resolved
func ToDriverRecords(drivers []Driver) []domain.DriverRecord {
	res := make([]domain.DriverRecord, 0, len(drivers))
	for _, d := range drivers {
		rec := domain.DriverRecord{
			Number:      d.DriverNumber,
			FullName:    d.FullName,
			GivenName:   d.FirstName,
			FamilyName:  d.LastName,
			Acronym:     d.NameAcronym,
			TeamName:    d.TeamName,
			TeamColor:   derive.TeamColor(d.TeamColour),
			CountryCode: d.CountryCode,
			HeadshotURL: d.HeadshotURL,
		}
		rec.ImageURL = derive.ResolveImage(rec)
		res = append(res, rec)
	}
	return res
}

func toRaceEvents(meetings []Meeting) []domain.RaceEvent {
	res := make([]domain.RaceEvent, 0, len(meetings))
	for _, m := range meetings {
		res = append(res, toRaceEvent(m))
	}
	return res
}

func toRaceEvent(m Meeting) domain.RaceEvent {
	return domain.RaceEvent{
		Key:          m.MeetingKey,
		Name:         m.MeetingName,
		OfficialName: m.MeetingOfficialName,
		Location:     m.Location,
		Country:      m.CountryName,
		CountryCode:  m.CountryCode,
		CountryFlag:  m.CountryFlag,
		CircuitName:  m.CircuitShortName,
		CircuitImage: m.CircuitImage,
		DateStart:    parseTime(m.DateStart),
		DateEnd:      parseTime(m.DateEnd),
	}
}

// parseTime parses service timestamps, unparseable values give zero time
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
