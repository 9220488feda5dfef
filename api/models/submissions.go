package models

import (
	"time"

	"github.com/Shashwata32/EcoLeague/storage"
)

// AnonymousUserID is recorded when a request carries no session identity.
const AnonymousUserID = "anonymous"

type SubmitReportRequest struct {
	AreaID      string `json:"areaId"`
	Description string `json:"description"`
	// Image is an optional base64 or data URL payload; it goes through the
	// media pipeline before storage.
	Image string `json:"image,omitempty"`
}

type GradeRequest struct {
	Points int `json:"points"`
}

type SubmissionResponse struct {
	ID            string    `json:"id"`
	AreaID        string    `json:"areaId"`
	AreaName      string    `json:"areaName"`
	UserID        string    `json:"userId"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	Status        string    `json:"status"`
	PointsAwarded int       `json:"pointsAwarded,omitempty"`
	HallOfFame    bool      `json:"hallOfFame"`
	CreatedAt     time.Time `json:"createdAt"`
}

func TransformSubmissionFromStorage(submission *storage.Submission, areaName string) SubmissionResponse {
	return SubmissionResponse{
		ID:            submission.ID,
		AreaID:        submission.AreaID,
		AreaName:      areaName,
		UserID:        submission.UserID,
		Description:   submission.Description,
		Image:         submission.Image,
		Status:        submission.Status,
		PointsAwarded: submission.PointsAwarded,
		HallOfFame:    submission.HallOfFame,
		CreatedAt:     submission.CreatedAt,
	}
}
