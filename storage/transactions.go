package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB TransactWriteItems hard limit.
const maxTransactItems = 100

// CompetitionTransactor owns the two multi-write units of the competition:
// grading a submission and closing out a month. Both are single transactions
// so readers never observe a partial effect.
type CompetitionTransactor interface {
	GradeSubmission(ctx context.Context, submissionID, areaID string, points int, hallOfFame bool) error
	ArchiveAndReset(ctx context.Context, record *WinnerRecord, areas []*Area, submissions []*Submission) error
}

type DynamoCompetitionTransactor struct {
	Client              *dynamodb.Client
	AreaTableName       string
	SubmissionTableName string
	HistoryTableName    string
}

// GradeSubmission atomically credits the area and approves the submission.
// The score mutation is an ADD expression, never a read-modify-write, so
// concurrent graders cannot lose updates. The area update is listed first:
// on a partial-failure retry the submission can never end up approved with
// no score credit.
func (t *DynamoCompetitionTransactor) GradeSubmission(ctx context.Context, submissionID, areaID string, points int, hallOfFame bool) error {
	_, err := t.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: &t.AreaTableName,
					Key: map[string]types.AttributeValue{
						"PK": &types.AttributeValueMemberS{Value: areaID},
					},
					UpdateExpression:    aws.String("ADD Score :points"),
					ConditionExpression: aws.String("attribute_exists(PK)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":points": &types.AttributeValueMemberN{Value: strconv.Itoa(points)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: &t.SubmissionTableName,
					Key: map[string]types.AttributeValue{
						"PK": &types.AttributeValueMemberS{Value: submissionID},
					},
					UpdateExpression:    aws.String("SET #st = :approved, PointsAwarded = :points, HallOfFame = :fame"),
					ConditionExpression: aws.String("attribute_exists(PK) AND #st = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#st": "Status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":approved": &types.AttributeValueMemberS{Value: StatusApproved},
						":pending":  &types.AttributeValueMemberS{Value: StatusPending},
						":points":   &types.AttributeValueMemberN{Value: strconv.Itoa(points)},
						":fame":     &types.AttributeValueMemberBOOL{Value: hallOfFame},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					logging.Log.Warnf("GRADE: area %s missing, grade aborted", areaID)
					return ErrAreaNotFound
				}
				logging.Log.Warnf("GRADE: submission %s is not pending, grade aborted", submissionID)
				return ErrSubmissionNotPending
			}
		}
		logging.Log.Errorf("GRADE: transaction failed for submission %s: %v", submissionID, err)
		return err
	}
	return nil
}

// ArchiveAndReset commits the end-of-month protocol in one transaction:
// write the winner record, zero every area's score and badge, delete every
// submission. On any failure nothing is applied and the operator retries the
// whole operation.
func (t *DynamoCompetitionTransactor) ArchiveAndReset(ctx context.Context, record *WinnerRecord, areas []*Area, submissions []*Submission) error {
	total := 1 + len(areas) + len(submissions)
	if total > maxTransactItems {
		logging.Log.Errorf("RESET: %d items exceed the transaction limit of %d", total, maxTransactItems)
		return ErrResetTooLarge
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		logging.Log.Errorf("RESET: failed to marshal winner record: %v", err)
		return err
	}

	transactItems := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           &t.HistoryTableName,
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(PK)"),
			},
		},
	}

	for _, area := range areas {
		transactItems = append(transactItems, types.TransactWriteItem{
			Update: &types.Update{
				TableName: &t.AreaTableName,
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: area.ID},
				},
				UpdateExpression: aws.String("SET Score = :zero, Badge = :badge"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":zero":  &types.AttributeValueMemberN{Value: "0"},
					":badge": &types.AttributeValueMemberS{Value: DefaultBadge},
				},
			},
		})
	}

	for _, submission := range submissions {
		transactItems = append(transactItems, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: &t.SubmissionTableName,
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: submission.ID},
				},
			},
		})
	}

	_, err = t.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		logging.Log.Errorf("RESET: transaction failed: %v", err)
		return err
	}

	logging.Log.Infof("RESET: archived %s (%d pts), reset %d areas, purged %d submissions",
		record.WinnerName, record.FinalScore, len(areas), len(submissions))
	return nil
}
