package models

import (
	"time"

	"github.com/Shashwata32/EcoLeague/storage"
)

type RankingEntry struct {
	Rank  int    `json:"rank"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Badge string `json:"badge"`
}

type LeaderboardResponse struct {
	Rankings   []RankingEntry       `json:"rankings"`
	WallOfFame []SubmissionResponse `json:"wallOfFame"`
}

type SeriesPoint struct {
	Area  string `json:"area"`
	Value int    `json:"value"`
}

// ChartsResponse carries both chart series in alphabetical-by-area order so
// the frontend palette maps to the same area regardless of rank.
type ChartsResponse struct {
	Participation []SeriesPoint `json:"participation"`
	Scores        []SeriesPoint `json:"scores"`
}

type WinnerResponse struct {
	WinnerName string    `json:"winnerName"`
	FinalScore int       `json:"finalScore"`
	MonthLabel string    `json:"monthLabel"`
	ArchivedAt time.Time `json:"archivedAt"`
}

type SeasonResponse struct {
	MonthLabel string    `json:"monthLabel"`
	EndsAt     time.Time `json:"endsAt"`
}

// ResetResponse reports what the end-of-month protocol did. Archived is
// false when there were no areas to rank.
type ResetResponse struct {
	Archived bool            `json:"archived"`
	Winner   *WinnerResponse `json:"winner,omitempty"`
}

func TransformWinnerRecordFromStorage(record *storage.WinnerRecord) WinnerResponse {
	return WinnerResponse{
		WinnerName: record.WinnerName,
		FinalScore: record.FinalScore,
		MonthLabel: record.MonthLabel,
		ArchivedAt: record.ArchivedAt,
	}
}
