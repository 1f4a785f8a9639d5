package db

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/midiscale/analysis"
	"github.com/jsphweid/midiscale/model"
	"github.com/stretchr/testify/assert"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items      map[string]map[string]*dynamodb.AttributeValue
	writeCalls int
	// number of write calls that leave their last request unprocessed
	stingy int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}
}

func (f *fakeDynamo) BatchWriteItem(in *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error) {
	f.writeCalls++
	out := &dynamodb.BatchWriteItemOutput{}
	for table, writes := range in.RequestItems {
		if len(writes) > maxBatchWrite {
			return nil, fmt.Errorf("too many writes: %d", len(writes))
		}
		if f.stingy > 0 && len(writes) > 0 {
			f.stingy--
			out.UnprocessedItems = map[string][]*dynamodb.WriteRequest{table: writes[len(writes)-1:]}
			writes = writes[:len(writes)-1]
		}
		for _, w := range writes {
			f.items[*w.PutRequest.Item["PK"].S] = w.PutRequest.Item
		}
	}
	return out, nil
}

func (f *fakeDynamo) BatchGetItem(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range in.RequestItems {
		for _, k := range ka.Keys {
			if it, ok := f.items[*k["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], it)
			}
		}
	}
	return out, nil
}

func report(num uint32, path string, pitches ...uint8) model.FileReport {
	var notes []model.Note
	for _, p := range pitches {
		notes = append(notes, model.Note{Pitch: p, Velocity: 100, Duration: 0.5})
	}
	return model.FileReport{
		FileNum: num,
		Path:    path,
		Report:  analysis.AnalyzeTracks([]model.Track{{Index: 0, Notes: notes}}),
	}
}

func TestPutAndGetReports(t *testing.T) {
	fake := newFakeDynamo()
	store := NewWithClient(fake, "reports")

	in := []model.FileReport{
		report(0, "a.mid", 60, 62, 64, 65, 67, 69, 71),
		report(1, "b.mid", 57, 60, 62, 63, 64, 67),
		{FileNum: 2, Path: "c.mid", Error: "truncated midi stream"},
	}

	assert := assert.New(t)
	assert.NoError(store.PutReports(in))
	assert.Equal("C Major (Ionian)", *fake.items["a.mid"]["BestScale"].S)

	got, err := store.GetReports([]string{"a.mid", "c.mid", "missing.mid"})
	assert.NoError(err)
	assert.Len(got, 2)
	assert.Equal(uint32(0), got["a.mid"].FileNum)
	best, ok := analysis.BestMatch(got["a.mid"].Report)
	assert.True(ok)
	assert.Equal("Major (Ionian)", best.ScaleName)
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, got["a.mid"].Report.Tracks[0].PitchClasses)
	assert.Equal("truncated midi stream", got["c.mid"].Error)
}

func TestPutReportsBatchesAndRetries(t *testing.T) {
	fake := newFakeDynamo()
	fake.stingy = 1
	store := NewWithClient(fake, "reports")

	var in []model.FileReport
	for i := 0; i < 30; i++ {
		in = append(in, model.FileReport{FileNum: uint32(i), Path: fmt.Sprintf("%02d.mid", i)})
	}

	assert := assert.New(t)
	assert.NoError(store.PutReports(in))
	assert.Len(fake.items, 30)
	assert.Equal(3, fake.writeCalls)
}

func TestPutReportsGivesUp(t *testing.T) {
	fake := newFakeDynamo()
	fake.stingy = maxAttempts
	store := NewWithClient(fake, "reports")

	err := store.PutReports([]model.FileReport{{Path: "a.mid"}})
	assert.Error(t, err)
}
