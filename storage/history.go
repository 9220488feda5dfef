package storage

import (
	"context"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// HistoryStorage is append-only: winner records are written once by the
// monthly reset and never mutated or deleted.
type HistoryStorage interface {
	GetAll(ctx context.Context) ([]*WinnerRecord, error)
}

type DynamoHistoryStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoHistoryStorage) GetAll(ctx context.Context) ([]*WinnerRecord, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("HISTORY: scan failed: %v", err)
		return nil, err
	}

	var records []*WinnerRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		logging.Log.Errorf("HISTORY: failed to unmarshal winner records: %v", err)
		return nil, err
	}
	return records, nil
}
