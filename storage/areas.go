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

type AreaStorage interface {
	Get(ctx context.Context, id string) (*Area, error)
	GetAll(ctx context.Context) ([]*Area, error)
	Create(ctx context.Context, area *Area) error
	Rename(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
}

type DynamoAreaStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoAreaStorage) Get(ctx context.Context, id string) (*Area, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		logging.Log.Errorf("AREA: GetItem for ID %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		logging.Log.Warnf("AREA: no area found with ID %s", id)
		return nil, nil
	}

	var area Area
	if err := attributevalue.UnmarshalMap(out.Item, &area); err != nil {
		logging.Log.Errorf("AREA: failed to unmarshal area: %v", err)
		return nil, err
	}
	return &area, nil
}

func (s *DynamoAreaStorage) GetAll(ctx context.Context) ([]*Area, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("AREA: scan failed: %v", err)
		return nil, err
	}

	var areas []*Area
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &areas); err != nil {
		logging.Log.Errorf("AREA: failed to unmarshal list: %v", err)
		return nil, err
	}
	return areas, nil
}

func (s *DynamoAreaStorage) Create(ctx context.Context, area *Area) error {
	item, err := attributevalue.MarshalMap(area)
	if err != nil {
		logging.Log.Errorf("AREA: failed to marshal area: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		logging.Log.Errorf("AREA: failed to create area: %v", err)
		return err
	}
	return nil
}

func (s *DynamoAreaStorage) Rename(ctx context.Context, id string, name string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #n = :name"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "Name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("AREA: rename of missing area %s", id)
			return ErrAreaNotFound
		}
		logging.Log.Errorf("AREA: failed to rename area %s: %v", id, err)
		return err
	}
	return nil
}

// Delete removes the area only. Submissions referencing it are kept and
// render with a fallback label.
func (s *DynamoAreaStorage) Delete(ctx context.Context, id string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		logging.Log.Errorf("AREA: failed to delete area with ID %s: %v", id, err)
		return err
	}
	logging.Log.Infof("AREA: deleted area with ID %s", id)
	return nil
}
