package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

type fakeDynamo struct {
	putInputs    []*dynamodb.PutItemInput
	deleteInputs []*dynamodb.DeleteItemInput
	getOutput    *dynamodb.GetItemOutput
	putErr       error
	getErr       error
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteInputs = append(f.deleteInputs, params)
	return &dynamodb.DeleteItemOutput{}, nil
}

func stringAttr(t *testing.T, item map[string]dynamotypes.AttributeValue, key string) string {
	t.Helper()
	attr, ok := item[key].(*dynamotypes.AttributeValueMemberS)
	require.True(t, ok, "attribute %s must be a string", key)
	return attr.Value
}

func TestSaveCollectionWritesSingleRow(t *testing.T) {
	client := &fakeDynamo{}
	repo := NewTicketRepository(client, "Ticket", "SubTicket")

	err := repo.SaveCollection(context.Background(), &domain.TicketCollection{
		DocumentID:      "doc-1",
		CreatedDatetime: "2024-05-01T10:00:00Z",
		Tickets:         []domain.Ticket{{Subject: "A", Body: "B", EstimationPoints: 2}},
		OriginalPrompt:  "prompt",
	})
	require.NoError(t, err)

	require.Len(t, client.putInputs, 1)
	input := client.putInputs[0]
	assert.Equal(t, "Ticket", *input.TableName)
	assert.Equal(t, "doc-1", stringAttr(t, input.Item, "document_id"))
	assert.Equal(t, "2024-05-01T10:00:00Z", stringAttr(t, input.Item, "created_datetime"))
	assert.Equal(t, "prompt", stringAttr(t, input.Item, "original_prompt"))
}

func TestSaveSubTicketsWritesSubTicketTable(t *testing.T) {
	client := &fakeDynamo{}
	repo := NewTicketRepository(client, "Ticket", "SubTicket")

	err := repo.SaveSubTickets(context.Background(), &domain.SubTicketCollection{
		UserID:          "user-9",
		SubTicketID:     "sub-1",
		SubTicketPrompt: "expansion prompt",
	})
	require.NoError(t, err)

	require.Len(t, client.putInputs, 1)
	input := client.putInputs[0]
	assert.Equal(t, "SubTicket", *input.TableName)
	assert.Equal(t, "user-9", stringAttr(t, input.Item, "user_id"))
	assert.Equal(t, "sub-1", stringAttr(t, input.Item, "sub_ticket_id"))
}

func TestGetCollectionRoundTrip(t *testing.T) {
	stored := domain.TicketCollection{
		DocumentID:      "doc-1",
		CreatedDatetime: "2024-05-01T10:00:00Z",
		Tickets:         []domain.Ticket{{Subject: "A", Body: "B", EstimationPoints: 2}},
		OriginalPrompt:  "prompt",
	}
	item, err := attributevalue.MarshalMap(stored)
	require.NoError(t, err)

	client := &fakeDynamo{getOutput: &dynamodb.GetItemOutput{Item: item}}
	repo := NewTicketRepository(client, "Ticket", "SubTicket")

	collection, err := repo.GetCollection(context.Background(), "doc-1", "2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, stored, *collection)
}

func TestGetCollectionNotFound(t *testing.T) {
	repo := NewTicketRepository(&fakeDynamo{}, "Ticket", "SubTicket")

	_, err := repo.GetCollection(context.Background(), "doc-1", "2024-05-01T10:00:00Z")
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "NOT_FOUND"))
}

func TestGetCollectionStorageFailure(t *testing.T) {
	repo := NewTicketRepository(&fakeDynamo{getErr: errors.New("throttled")}, "Ticket", "SubTicket")

	_, err := repo.GetCollection(context.Background(), "doc-1", "2024-05-01T10:00:00Z")
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "PERSISTENCE_FAILED"))
}

func TestSaveCollectionStorageFailure(t *testing.T) {
	repo := NewTicketRepository(&fakeDynamo{putErr: errors.New("throttled")}, "Ticket", "SubTicket")

	err := repo.SaveCollection(context.Background(), &domain.TicketCollection{DocumentID: "doc-1", CreatedDatetime: "ts"})
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "PERSISTENCE_FAILED"))
}

func TestDeleteCollectionAddressesRow(t *testing.T) {
	client := &fakeDynamo{}
	repo := NewTicketRepository(client, "Ticket", "SubTicket")

	require.NoError(t, repo.DeleteCollection(context.Background(), "doc-1", "2024-05-01T10:00:00Z"))

	require.Len(t, client.deleteInputs, 1)
	input := client.deleteInputs[0]
	assert.Equal(t, "Ticket", *input.TableName)
	assert.Equal(t, "doc-1", stringAttr(t, input.Key, "document_id"))
	assert.Equal(t, "2024-05-01T10:00:00Z", stringAttr(t, input.Key, "created_datetime"))
}

func TestDeleteSubTicketsAddressesRow(t *testing.T) {
	client := &fakeDynamo{}
	repo := NewTicketRepository(client, "Ticket", "SubTicket")

	require.NoError(t, repo.DeleteSubTickets(context.Background(), "user-9", "sub-1"))

	require.Len(t, client.deleteInputs, 1)
	input := client.deleteInputs[0]
	assert.Equal(t, "SubTicket", *input.TableName)
	assert.Equal(t, "user-9", stringAttr(t, input.Key, "user_id"))
	assert.Equal(t, "sub-1", stringAttr(t, input.Key, "sub_ticket_id"))
}
