// Package scoring holds the pure projections over store snapshots: the live
// rankings, the wall of fame, the chart series and the winner history. All
// of them are recomputed from canonical store state on every read, never
// persisted.
package scoring

import (
	"sort"

	"github.com/Shashwata32/EcoLeague/storage"
)

// FameThreshold is the grade above which a submission is automatically
// published to the wall of fame (a 9 or a 10).
const FameThreshold = 8

// MinPoints and MaxPoints bound a valid grade.
const (
	MinPoints = 1
	MaxPoints = 10
)

// FallbackAreaName labels submissions whose area was deleted.
const FallbackAreaName = "Community"

// RankedArea is one leaderboard row. Rank starts at 1.
type RankedArea struct {
	Rank int
	Area *storage.Area
}

// ChartPoint is one alphabetical series entry.
type ChartPoint struct {
	AreaName string
	Value    int
}

// Rankings sorts areas by score descending. Equal scores tie-break on id
// ascending so the order is deterministic across snapshots.
func Rankings(areas []*storage.Area) []RankedArea {
	sorted := make([]*storage.Area, len(areas))
	copy(sorted, areas)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ID < sorted[j].ID
	})

	ranked := make([]RankedArea, 0, len(sorted))
	for i, area := range sorted {
		ranked = append(ranked, RankedArea{Rank: i + 1, Area: area})
	}
	return ranked
}

// Winner returns the current top-ranked area, or nil when no areas exist.
func Winner(areas []*storage.Area) *storage.Area {
	ranked := Rankings(areas)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0].Area
}

// WallOfFame filters the submissions published to the wall, in snapshot
// order. Only graded submissions can carry the flag.
func WallOfFame(submissions []*storage.Submission) []*storage.Submission {
	var wall []*storage.Submission
	for _, s := range submissions {
		if s.HallOfFame {
			wall = append(wall, s)
		}
	}
	return wall
}

// Pending filters the moderation queue: exactly the submissions that were
// never graded or rejected.
func Pending(submissions []*storage.Submission) []*storage.Submission {
	var pending []*storage.Submission
	for _, s := range submissions {
		if s.Status == storage.StatusPending {
			pending = append(pending, s)
		}
	}
	return pending
}

// ParticipationSeries counts submissions (any status) per area, ordered
// alphabetically by area name. The alphabetical order is load-bearing: the
// frontend maps a fixed color palette onto series positions, and colors must
// stay glued to area names while ranks move around.
func ParticipationSeries(areas []*storage.Area, submissions []*storage.Submission) []ChartPoint {
	counts := make(map[string]int, len(areas))
	for _, s := range submissions {
		counts[s.AreaID]++
	}

	points := make([]ChartPoint, 0, len(areas))
	for _, area := range sortedByName(areas) {
		points = append(points, ChartPoint{AreaName: area.Name, Value: counts[area.ID]})
	}
	return points
}

// ScoreSeries lists each area's current score in the same alphabetical
// order as ParticipationSeries.
func ScoreSeries(areas []*storage.Area) []ChartPoint {
	points := make([]ChartPoint, 0, len(areas))
	for _, area := range sortedByName(areas) {
		points = append(points, ChartPoint{AreaName: area.Name, Value: area.Score})
	}
	return points
}

// History orders winner records newest first.
func History(records []*storage.WinnerRecord) []*storage.WinnerRecord {
	sorted := make([]*storage.WinnerRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArchivedAt.After(sorted[j].ArchivedAt)
	})
	return sorted
}

// AreaName resolves an area id against a snapshot, falling back to the
// orphan label when the area was deleted.
func AreaName(areas []*storage.Area, areaID string) string {
	for _, area := range areas {
		if area.ID == areaID {
			return area.Name
		}
	}
	return FallbackAreaName
}

func sortedByName(areas []*storage.Area) []*storage.Area {
	sorted := make([]*storage.Area, len(areas))
	copy(sorted, areas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
