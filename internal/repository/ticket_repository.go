package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// TicketRepository persists generated ticket collections. Writes are
// single-row upserts; there is no transactionality across rows and no local
// retry.
type TicketRepository interface {
	SaveCollection(ctx context.Context, collection *domain.TicketCollection) error
	GetCollection(ctx context.Context, documentID, createdDatetime string) (*domain.TicketCollection, error)
	DeleteCollection(ctx context.Context, documentID, createdDatetime string) error
	SaveSubTickets(ctx context.Context, collection *domain.SubTicketCollection) error
	DeleteSubTickets(ctx context.Context, userID, subTicketID string) error
}

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type ticketRepository struct {
	client         dynamoAPI
	ticketTable    string
	subTicketTable string
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(client dynamoAPI, ticketTable, subTicketTable string) TicketRepository {
	return &ticketRepository{client: client, ticketTable: ticketTable, subTicketTable: subTicketTable}
}

func (r *ticketRepository) SaveCollection(ctx context.Context, collection *domain.TicketCollection) error {
	item, err := attributevalue.MarshalMap(collection)
	if err != nil {
		return util.NewPersistenceError("write", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.ticketTable),
		Item:      item,
	})
	if err != nil {
		return util.NewPersistenceError("write", err)
	}
	return nil
}

func (r *ticketRepository) GetCollection(ctx context.Context, documentID, createdDatetime string) (*domain.TicketCollection, error) {
	output, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ticketTable),
		Key:       collectionKey(documentID, createdDatetime),
	})
	if err != nil {
		return nil, util.NewPersistenceError("read", err)
	}
	if len(output.Item) == 0 {
		return nil, util.NewNotFound("ticket collection", map[string]any{
			"document_id":      documentID,
			"created_datetime": createdDatetime,
		})
	}

	var collection domain.TicketCollection
	if err := attributevalue.UnmarshalMap(output.Item, &collection); err != nil {
		return nil, util.NewPersistenceError("read", err)
	}
	return &collection, nil
}

func (r *ticketRepository) DeleteCollection(ctx context.Context, documentID, createdDatetime string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.ticketTable),
		Key:       collectionKey(documentID, createdDatetime),
	})
	if err != nil {
		return util.NewPersistenceError("delete", err)
	}
	return nil
}

func (r *ticketRepository) SaveSubTickets(ctx context.Context, collection *domain.SubTicketCollection) error {
	item, err := attributevalue.MarshalMap(collection)
	if err != nil {
		return util.NewPersistenceError("write", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.subTicketTable),
		Item:      item,
	})
	if err != nil {
		return util.NewPersistenceError("write", err)
	}
	return nil
}

func (r *ticketRepository) DeleteSubTickets(ctx context.Context, userID, subTicketID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.subTicketTable),
		Key: map[string]dynamotypes.AttributeValue{
			"user_id":       &dynamotypes.AttributeValueMemberS{Value: userID},
			"sub_ticket_id": &dynamotypes.AttributeValueMemberS{Value: subTicketID},
		},
	})
	if err != nil {
		return util.NewPersistenceError("delete", err)
	}
	return nil
}

func collectionKey(documentID, createdDatetime string) map[string]dynamotypes.AttributeValue {
	return map[string]dynamotypes.AttributeValue{
		"document_id":      &dynamotypes.AttributeValueMemberS{Value: documentID},
		"created_datetime": &dynamotypes.AttributeValueMemberS{Value: createdDatetime},
	}
}
