package page

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/apexchronicle/apex/pkg/derive"
	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/feed"
)

//go:generate moq -out mocks/live_data.go -pkg mocks -skip-ensure -fmt goimports . LiveData
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History
//go:generate moq -out mocks/news_reader.go -pkg mocks -skip-ensure -fmt goimports . NewsReader

// LiveData provides the current season from the live data service
type LiveData interface {
	Meetings(ctx context.Context, year int) ([]domain.RaceEvent, error)
	LatestMeeting(ctx context.Context) (domain.RaceEvent, bool, error)
	Sessions(ctx context.Context, meetingKey, year int) ([]domain.Session, error)
	Drivers(ctx context.Context, sessionKey string) ([]domain.DriverRecord, error)
}

// History provides historical results and standings
type History interface {
	RaceResults(ctx context.Context, year, round string) ([]domain.Race, error)
	LatestRaceResult(ctx context.Context) (domain.Race, bool, error)
	Schedule(ctx context.Context, year string) ([]domain.Race, error)
	DriverStandings(ctx context.Context) ([]domain.DriverStanding, error)
	ConstructorStandings(ctx context.Context) ([]domain.ConstructorStanding, error)
}

// NewsReader fetches and parses a news feed
type NewsReader interface {
	Fetch(ctx context.Context, kind domain.NewsKind) ([]domain.Article, error)
}

// NoParam is the parameter of pages without one
type NoParam struct{}

// NewsQuery selects a news list. Zero Limit means the default of the kind.
type NewsQuery struct {
	Kind  domain.NewsKind `json:"kind"`
	Limit int             `json:"limit"`
}

// ResultsQuery selects a season and optionally one of its rounds
type ResultsQuery struct {
	Year  string `json:"year"`
	Round string `json:"round,omitempty"`
}

// Opts controls sizes of page sections
type Opts struct {
	Season        int // season of the home and calendar pages
	HomeRaces     int // grands prix on the home page
	HomeNews      int // articles on the home page
	TopDrivers    int // driver cards on the home page
	LatestNews    int // default size of the latest news list
	TechnicalNews int // default size of the technical news list
}

// Service builds all pages
type Service struct {
	live    LiveData
	history History
	news    NewsReader
	opts    Opts
	now     func() time.Time
}

// champion is highlighted on the drivers page regardless of the current grid
var champion = domain.DriverRecord{
	Number:     1,
	FullName:   "Max Verstappen",
	GivenName:  "Max",
	FamilyName: "Verstappen",
	Acronym:    "VER",
	TeamName:   "Red Bull Racing",
	TeamColor:  "3671C6",
}

// grandPrix marks meetings that are races rather than testing
const grandPrix = "Grand Prix"

// currentSeason is the season alias of the historical service
const currentSeason = "current"

// NewService makes a page service, zero options get defaults
func NewService(live LiveData, history History, news NewsReader, opts Opts) *Service {
	if opts.Season == 0 {
		opts.Season = time.Now().Year()
	}
	opts.HomeRaces = lo.Ternary(opts.HomeRaces > 0, opts.HomeRaces, 4)
	opts.HomeNews = lo.Ternary(opts.HomeNews > 0, opts.HomeNews, 6)
	opts.TopDrivers = lo.Ternary(opts.TopDrivers > 0, opts.TopDrivers, 3)
	opts.LatestNews = lo.Ternary(opts.LatestNews > 0, opts.LatestNews, 10)
	opts.TechnicalNews = lo.Ternary(opts.TechnicalNews > 0, opts.TechnicalNews, 5)
	return &Service{live: live, history: history, news: news, opts: opts, now: time.Now}
}

// Season returns the configured season
func (s *Service) Season() int {
	return s.opts.Season
}

// Home joins the grid, the season's meetings, the latest meeting with its sessions and the latest news
func (s *Service) Home(ctx context.Context, _ NoParam) (domain.HomePage, []string, error) {
	var (
		drivers  []domain.DriverRecord
		meetings []domain.RaceEvent
		latest   *domain.RaceEvent
		sessions []domain.Session
		news     []domain.Article
	)
	outcomes := Join(ctx,
		Branch{Name: "drivers", Run: func(ctx context.Context) (err error) {
			drivers, err = s.live.Drivers(ctx, "")
			return err
		}},
		Branch{Name: "meetings", Run: func(ctx context.Context) (err error) {
			meetings, err = s.live.Meetings(ctx, s.opts.Season)
			return err
		}},
		Branch{Name: "latest meeting", Run: func(ctx context.Context) error {
			m, ok, err := s.live.LatestMeeting(ctx)
			if err != nil || !ok {
				return err
			}
			latest = &m
			sessions, err = s.live.Sessions(ctx, m.Key, 0)
			return err
		}},
		Branch{Name: "news", Run: func(ctx context.Context) (err error) {
			news, _, err = s.latestNews(ctx, s.opts.HomeNews)
			return err
		}},
	)

	races := lo.Filter(meetings, func(m domain.RaceEvent, _ int) bool { return strings.Contains(m.Name, grandPrix) })
	races = lo.Slice(races, 0, s.opts.HomeRaces)
	for i := range races {
		races[i].Round = i + 1
		races[i].IsUpcoming = i == 0
	}

	res := domain.HomePage{
		UpcomingRaces:  races,
		LatestMeeting:  latest,
		LatestSessions: lo.Ternary(sessions != nil, sessions, []domain.Session{}),
		News:           news,
		TopDrivers:     lo.Map(lo.Slice(drivers, 0, s.opts.TopDrivers), toCard),
	}
	if len(races) > 0 {
		next := races[0]
		res.NextRace = &next
	}
	if res.News == nil {
		res.News = []domain.Article{}
	}
	return res, Warnings(outcomes), nil
}

// Drivers lists the grid as cards and groups it by team in order of first appearance
func (s *Service) Drivers(ctx context.Context, _ NoParam) (domain.DriversPage, []string, error) {
	var drivers []domain.DriverRecord
	outcomes := Join(ctx, Branch{Name: "drivers", Run: func(ctx context.Context) (err error) {
		drivers, err = s.live.Drivers(ctx, "")
		return err
	}})

	teams := lo.Uniq(lo.Map(drivers, func(d domain.DriverRecord, _ int) string { return d.TeamName }))
	res := domain.DriversPage{
		Champion: toCard(champion, 0),
		Drivers:  lo.Map(drivers, toCard),
		Teams: lo.Map(teams, func(team string, _ int) domain.TeamGroup {
			members := lo.Filter(drivers, func(d domain.DriverRecord, _ int) bool { return d.TeamName == team })
			return domain.TeamGroup{
				Name:      team,
				TeamColor: derive.TeamColor(members[0].TeamColor),
				Drivers:   lo.Map(members, func(d domain.DriverRecord, _ int) string { return d.FullName }),
			}
		}),
	}
	return res, Warnings(outcomes), nil
}

// Calendar lists the meetings of a year with round numbers and completed/upcoming flags
func (s *Service) Calendar(ctx context.Context, year int) (domain.CalendarPage, []string, error) {
	if year <= 0 {
		return domain.CalendarPage{}, nil, fmt.Errorf("invalid year %d", year)
	}

	var meetings []domain.RaceEvent
	outcomes := Join(ctx, Branch{Name: "meetings", Run: func(ctx context.Context) (err error) {
		meetings, err = s.live.Meetings(ctx, year)
		return err
	}})

	events := WithStatus(meetings, s.now())
	completed := lo.CountBy(events, func(e domain.RaceEvent) bool { return e.IsCompleted })
	res := domain.CalendarPage{
		Year:      year,
		Events:    events,
		Completed: completed,
		Remaining: len(events) - completed,
	}
	return res, Warnings(outcomes), nil
}

// Results shows one race of a season, the requested round or else the last one run.
// The race selector lists the season's schedule up to today, most recent first.
func (s *Service) Results(ctx context.Context, q ResultsQuery) (domain.ResultsPage, []string, error) {
	var (
		schedule []domain.Race
		selected *domain.Race
		missing  bool
		drivers  []domain.DriverRecord
	)
	outcomes := Join(ctx,
		Branch{Name: "schedule", Run: func(ctx context.Context) (err error) {
			schedule, err = s.history.Schedule(ctx, q.Year)
			return err
		}},
		Branch{Name: "results", Run: func(ctx context.Context) (err error) {
			selected, missing, err = s.selectRace(ctx, q)
			return err
		}},
		Branch{Name: "drivers", Run: func(ctx context.Context) (err error) {
			drivers, err = s.live.Drivers(ctx, "")
			return err
		}},
	)
	warnings := Warnings(outcomes)

	today := s.now().UTC().Format(time.DateOnly)
	run := lo.Filter(schedule, func(r domain.Race, _ int) bool { return r.Date != "" && r.Date <= today })
	slices.Reverse(run)

	res := domain.ResultsPage{
		Year: lo.Ternary(q.Year != "", q.Year, currentSeason),
		Races: lo.Map(run, func(r domain.Race, _ int) domain.RaceSummary {
			return domain.RaceSummary{Season: r.Season, Round: r.Round, Name: r.Name, Date: r.Date}
		}),
		Podium: []domain.PodiumEntry{},
		Rows:   []domain.ResultRowView{},
	}
	if missing {
		if selected != nil {
			warnings = append(warnings, fmt.Sprintf("round %s not found, showing round %s", q.Round, selected.Round))
		} else {
			warnings = append(warnings, fmt.Sprintf("round %s not found", q.Round))
		}
	}
	if selected == nil {
		return res, warnings, nil
	}

	idx := derive.BuildIndex(drivers)
	res.Selected = selected
	if podium := derive.TeamPodium(selected.Results, idx); podium != nil {
		res.Podium = podium
	}
	res.Rows = derive.DecorateRows(selected.Results, idx)
	res.FastestLap = derive.FastestLapView(selected.Results, idx)
	return res, warnings, nil
}

// selectRace loads the requested round. Without a round, or when the round has no results, it
// loads the last race run in the season; missing reports the latter case.
func (s *Service) selectRace(ctx context.Context, q ResultsQuery) (race *domain.Race, missing bool, err error) {
	if q.Round != "" {
		races, err := s.history.RaceResults(ctx, q.Year, q.Round)
		if err != nil {
			return nil, false, err
		}
		if len(races) > 0 {
			return &races[0], false, nil
		}
		missing = true
	}

	if q.Year == "" || q.Year == currentSeason {
		last, ok, err := s.history.LatestRaceResult(ctx)
		if err != nil || !ok {
			return nil, missing, err
		}
		return &last, missing, nil
	}

	races, err := s.history.RaceResults(ctx, q.Year, "")
	if err != nil || len(races) == 0 {
		return nil, missing, err
	}
	return &races[0], missing, nil
}

// Standings joins the driver and constructor championships
func (s *Service) Standings(ctx context.Context, _ NoParam) (domain.StandingsPage, []string, error) {
	res := domain.StandingsPage{}
	outcomes := Join(ctx,
		Branch{Name: "driver standings", Run: func(ctx context.Context) (err error) {
			res.Drivers, err = s.history.DriverStandings(ctx)
			return err
		}},
		Branch{Name: "constructor standings", Run: func(ctx context.Context) (err error) {
			res.Constructors, err = s.history.ConstructorStandings(ctx)
			return err
		}},
	)
	if res.Drivers == nil {
		res.Drivers = []domain.DriverStanding{}
	}
	if res.Constructors == nil {
		res.Constructors = []domain.ConstructorStanding{}
	}
	return res, Warnings(outcomes), nil
}

// News returns a news list. The latest list is replaced by the fixed fallback set when the feed
// can't be read or has no items; the technical list is just empty then.
func (s *Service) News(ctx context.Context, q NewsQuery) (domain.NewsPage, []string, error) {
	kind := lo.Ternary(q.Kind != "", q.Kind, domain.NewsLatest)
	res := domain.NewsPage{Kind: kind}

	var err error
	switch kind {
	case domain.NewsLatest:
		res.Articles, res.Fallback, err = s.latestNews(ctx, lo.Ternary(q.Limit > 0, q.Limit, s.opts.LatestNews))
	case domain.NewsTechnical:
		res.Articles, err = s.technicalNews(ctx, lo.Ternary(q.Limit > 0, q.Limit, s.opts.TechnicalNews))
	default:
		return domain.NewsPage{}, nil, fmt.Errorf("unknown news kind %q", kind)
	}
	return res, Warnings([]Outcome{{Name: string(kind) + " news", Err: err}}), nil
}

// latestNews never returns an empty list. The error reports why the fallback set was used.
func (s *Service) latestNews(ctx context.Context, limit int) (articles []domain.Article, fallback bool, err error) {
	articles, err = s.news.Fetch(ctx, domain.NewsLatest)
	if err != nil {
		return feed.Fallback(s.now()), true, err
	}
	if len(articles) == 0 {
		return feed.Fallback(s.now()), true, nil
	}
	return feed.Limit(articles, limit), false, nil
}

func (s *Service) technicalNews(ctx context.Context, limit int) ([]domain.Article, error) {
	articles, err := s.news.Fetch(ctx, domain.NewsTechnical)
	if err != nil {
		return []domain.Article{}, err
	}
	return feed.Limit(articles, limit), nil
}

// WithStatus copies events with round, completed and upcoming flags derived against now
func WithStatus(events []domain.RaceEvent, now time.Time) []domain.RaceEvent {
	intervals := lo.Map(events, func(e domain.RaceEvent, _ int) derive.Interval {
		return derive.Interval{Start: e.DateStart, End: e.DateEnd}
	})
	statuses := derive.DeriveStatus(intervals, now)

	res := make([]domain.RaceEvent, len(events))
	for i, e := range events {
		e.Round = statuses[i].Round
		e.IsCompleted = statuses[i].IsCompleted
		e.IsUpcoming = statuses[i].IsUpcoming
		res[i] = e
	}
	return res
}

func toCard(d domain.DriverRecord, _ int) domain.DriverCard {
	img := d.ImageURL
	if img == "" {
		img = derive.ResolveImage(d)
	}
	return domain.DriverCard{
		Name:        d.FullName,
		Acronym:     d.Acronym,
		Team:        d.TeamName,
		TeamColor:   derive.TeamColor(d.TeamColor),
		ImageURL:    img,
		CountryCode: d.CountryCode,
	}
}
