package storage

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DefaultBadge is the label every area starts with and returns to after a
// monthly reset.
const DefaultBadge = "Contender"

type Area struct {
	ID    string `dynamodbav:"PK"`
	Name  string `dynamodbav:"Name"`
	Score int    `dynamodbav:"Score"`
	Badge string `dynamodbav:"Badge"`
}

type Submission struct {
	ID            string    `dynamodbav:"PK"`
	AreaID        string    `dynamodbav:"AreaID"`
	UserID        string    `dynamodbav:"UserID"`
	Description   string    `dynamodbav:"Description"`
	Image         string    `dynamodbav:"Image,omitempty"` // compressed JPEG data URL
	Status        string    `dynamodbav:"Status"`
	PointsAwarded int       `dynamodbav:"PointsAwarded,omitempty"`
	HallOfFame    bool      `dynamodbav:"HallOfFame"`
	CreatedAt     time.Time `dynamodbav:"CreatedAt"`
}

type WinnerRecord struct {
	ID         string    `dynamodbav:"PK"`
	WinnerName string    `dynamodbav:"WinnerName"`
	FinalScore int       `dynamodbav:"FinalScore"`
	MonthLabel string    `dynamodbav:"MonthLabel"`
	ArchivedAt time.Time `dynamodbav:"ArchivedAt"`
}
