package derive

import (
	"strings"

	"github.com/apexchronicle/apex/pkg/domain"
)

// podiumOrder puts the winner in the middle: 2nd, 1st, 3rd
var podiumOrder = []int{1, 0, 2}

// ProjectPodium returns the top three rows in podium display order [P2, P1, P3].
// Rows must be sorted by finishing position. Returns nil for fewer than three rows.
func ProjectPodium(rows []domain.ResultRow) []domain.PodiumEntry {
	if len(rows) < 3 {
		return nil
	}

	res := make([]domain.PodiumEntry, 0, len(podiumOrder))
	for _, i := range podiumOrder {
		res = append(res, domain.PodiumEntry{Place: i + 1, Row: rows[i], TeamColor: domain.DefaultTeamColor})
	}
	return res
}

// TeamPodium is ProjectPodium with team colours and headshots joined from the driver index
func TeamPodium(rows []domain.ResultRow, idx DriverIndex) []domain.PodiumEntry {
	podium := ProjectPodium(rows)
	for i, p := range podium {
		d, ok := idx.Lookup(p.Row.DriverCode)
		if !ok {
			continue
		}
		podium[i].TeamColor = d.TeamColor
		podium[i].ImageURL = d.HeadshotURL
	}
	return podium
}

// FindFastestLap returns the first row holding the fastest lap (rank "1").
// The second value is false when the race has no fastest-lap data.
func FindFastestLap(rows []domain.ResultRow) (domain.ResultRow, bool) {
	for _, r := range rows {
		if r.FastestLap != nil && r.FastestLap.Rank == "1" {
			return r, true
		}
	}
	return domain.ResultRow{}, false
}

// PointsBadge returns the badge text for a points value: the points as given when their
// leading integer is positive, "0" otherwise
func PointsBadge(points string) string {
	if LeadingInt(points) > 0 {
		return strings.TrimSpace(points)
	}
	return "0"
}

// TopPosition returns the finishing position when it is on the podium (1-3), 0 otherwise
func TopPosition(position string) int {
	if p := LeadingInt(position); p >= 1 && p <= 3 {
		return p
	}
	return 0
}

// DecorateRows attaches team colour, points badge, podium position and time-or-status to every row
func DecorateRows(rows []domain.ResultRow, idx DriverIndex) []domain.ResultRowView {
	res := make([]domain.ResultRowView, 0, len(rows))
	for _, r := range rows {
		res = append(res, decorate(r, idx))
	}
	return res
}

func decorate(r domain.ResultRow, idx DriverIndex) domain.ResultRowView {
	view := domain.ResultRowView{
		ResultRow:    r,
		TeamColor:    idx.TeamColor(r.DriverCode),
		PointsBadge:  PointsBadge(r.Points),
		TimeOrStatus: r.Status,
		Top:          TopPosition(r.Position),
	}
	if r.Time != "" {
		view.TimeOrStatus = r.Time
	}
	return view
}

// FastestLapView returns the decorated fastest-lap holder, or nil if there is none
func FastestLapView(rows []domain.ResultRow, idx DriverIndex) *domain.ResultRowView {
	r, ok := FindFastestLap(rows)
	if !ok {
		return nil
	}
	view := decorate(r, idx)
	return &view
}
