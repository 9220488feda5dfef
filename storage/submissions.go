package storage

import (
	"context"
	"errors"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type SubmissionStorage interface {
	Get(ctx context.Context, id string) (*Submission, error)
	GetAll(ctx context.Context) ([]*Submission, error)
	Create(ctx context.Context, submission *Submission) error
	Reject(ctx context.Context, id string) error
	ClearHallOfFame(ctx context.Context, id string) error
}

type DynamoSubmissionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSubmissionStorage) Get(ctx context.Context, id string) (*Submission, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: GetItem for ID %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var submission Submission
	if err := attributevalue.UnmarshalMap(out.Item, &submission); err != nil {
		logging.Log.Errorf("SUBMISSION: failed to unmarshal submission: %v", err)
		return nil, err
	}
	return &submission, nil
}

func (s *DynamoSubmissionStorage) GetAll(ctx context.Context) ([]*Submission, error) {
	var submissions []*Submission
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
		})
		if err != nil {
			logging.Log.Errorf("SUBMISSION: scan failed: %v", err)
			return nil, err
		}

		var page []*Submission
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("SUBMISSION: failed to unmarshal submission list: %v", err)
			return nil, err
		}
		submissions = append(submissions, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return submissions, nil
}

func (s *DynamoSubmissionStorage) Create(ctx context.Context, submission *Submission) error {
	item, err := attributevalue.MarshalMap(submission)
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to marshal submission: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to create submission: %v", err)
		return err
	}
	return nil
}

// Reject flips a pending submission to rejected. The condition keeps the
// transition terminal: a submission that was already graded is not touched.
func (s *DynamoSubmissionStorage) Reject(ctx context.Context, id string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #st = :rejected"),
		ConditionExpression: aws.String("attribute_exists(PK) AND #st = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#st": "Status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected": &types.AttributeValueMemberS{Value: StatusRejected},
			":pending":  &types.AttributeValueMemberS{Value: StatusPending},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("SUBMISSION: reject of non-pending submission %s", id)
			return ErrSubmissionNotPending
		}
		logging.Log.Errorf("SUBMISSION: failed to reject submission %s: %v", id, err)
		return err
	}
	return nil
}

// ClearHallOfFame unpublishes a submission from the wall without touching
// its status or any score.
func (s *DynamoSubmissionStorage) ClearHallOfFame(ctx context.Context, id string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET HallOfFame = :off"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":off": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("SUBMISSION: clear hall of fame for missing submission %s", id)
			return ErrSubmissionNotFound
		}
		logging.Log.Errorf("SUBMISSION: failed to clear hall of fame for %s: %v", id, err)
		return err
	}
	return nil
}
