package db

import (
	"github.com/jsphweid/midiscale/analysis"
	"github.com/jsphweid/midiscale/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// dynamo request limits
const (
	maxBatchWrite = 25
	maxBatchGet   = 100
	maxAttempts   = 3
)

type item struct {
	PK        string       `dynamodbav:"PK"`
	FileNum   uint32       `dynamodbav:"FileNum"`
	BestScale string       `dynamodbav:"BestScale,omitempty"`
	Report    model.Report `dynamodbav:"Report"`
	Error     string       `dynamodbav:"Error,omitempty"`
}

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// New connects to a dynamo endpoint, typically dynamodb-local.
func New(endpoint, table string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewWithClient(dynamodb.New(sess), table), nil
}

func NewWithClient(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

func toItem(r model.FileReport) item {
	it := item{PK: r.Path, FileNum: r.FileNum, Report: r.Report, Error: r.Error}
	if best, ok := analysis.BestMatch(r.Report); ok {
		it.BestScale = best.Key()
	}
	return it
}

// PutReports writes reports keyed by path, retrying unprocessed items.
func (s *Store) PutReports(reports []model.FileReport) error {
	for start := 0; start < len(reports); start += maxBatchWrite {
		end := start + maxBatchWrite
		if end > len(reports) {
			end = len(reports)
		}

		var writes []*dynamodb.WriteRequest
		for _, r := range reports[start:end] {
			av, err := dynamodbattribute.MarshalMap(toItem(r))
			if err != nil {
				return errors.Wrapf(err, "marshalling report for %s", r.Path)
			}
			writes = append(writes, &dynamodb.WriteRequest{PutRequest: &dynamodb.PutRequest{Item: av}})
		}

		pending := map[string][]*dynamodb.WriteRequest{s.table: writes}
		for attempt := 0; len(pending[s.table]) > 0; attempt++ {
			if attempt == maxAttempts {
				return errors.Errorf("%d reports left unprocessed by DynamoDB", len(pending[s.table]))
			}
			out, err := s.client.BatchWriteItem(&dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return errors.Wrap(err, "error from DynamoDB")
			}
			pending = out.UnprocessedItems
			if pending == nil {
				break
			}
		}
	}
	return nil
}

// GetReports fetches stored reports by path. Missing paths are absent from
// the result.
func (s *Store) GetReports(paths []string) (map[string]model.FileReport, error) {
	res := make(map[string]model.FileReport)

	for start := 0; start < len(paths); start += maxBatchGet {
		end := start + maxBatchGet
		if end > len(paths) {
			end = len(paths)
		}

		var keys []map[string]*dynamodb.AttributeValue
		for _, p := range paths[start:end] {
			keys = append(keys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(p)},
			})
		}

		out, err := s.client.BatchGetItem(&dynamodb.BatchGetItemInput{
			RequestItems: map[string]*dynamodb.KeysAndAttributes{
				s.table: {Keys: keys},
			},
		})
		if err != nil {
			return nil, errors.Wrap(err, "error from DynamoDB")
		}

		for _, v := range out.Responses[s.table] {
			var it item
			if err := dynamodbattribute.UnmarshalMap(v, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshalling report")
			}
			res[it.PK] = model.FileReport{
				FileNum: it.FileNum,
				Path:    it.PK,
				Report:  it.Report,
				Error:   it.Error,
			}
		}
	}

	return res, nil
}
