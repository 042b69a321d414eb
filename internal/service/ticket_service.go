package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/internal/llm"
	"github.com/transcriptions-ai/transcriber/internal/repository"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

// TicketService runs the transcript-to-tickets pipeline: fetch, prompt,
// complete, normalize, store. Every stage failure aborts the operation and
// nothing is persisted.
type TicketService struct {
	transcripts repository.TranscriptRepository
	tickets     repository.TicketRepository
	logger      *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TranscriptRepo repository.TranscriptRepository
	TicketRepo     repository.TicketRepository
	Logger         *zap.Logger
}

// GenerateInput describes a ticket generation request.
type GenerateInput struct {
	DocumentID      string
	CreatedDatetime string
	NumberOfTickets int
	Platform        domain.Platform
}

// ExpandInput describes a ticket expansion request.
type ExpandInput struct {
	DocumentID         string
	CreatedDatetime    string
	UserID             string
	SubTicketID        string
	Ticket             map[string]any
	NumberOfSubTickets int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		transcripts: deps.TranscriptRepo,
		tickets:     deps.TicketRepo,
		logger:      deps.Logger,
	}
}

// GenerateTickets turns a stored transcript into a persisted ticket
// collection using the given provider client.
func (s *TicketService) GenerateTickets(ctx context.Context, client llm.Client, input GenerateInput) (*domain.TicketCollection, error) {
	if input.DocumentID == "" {
		return nil, util.NewValidationError("document_id is required", nil)
	}
	if input.CreatedDatetime == "" {
		return nil, util.NewValidationError("generation_datetime is required", nil)
	}

	transcript, err := s.transcripts.Fetch(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, util.NewValidationError("transcript is empty", map[string]any{"document_id": input.DocumentID})
	}
	s.logger.Info("transcript downloaded",
		zap.String("document_id", input.DocumentID),
		zap.Int("transcript_chars", len(transcript)),
	)

	prompt, err := llm.BuildTicketPrompt(transcript, input.NumberOfTickets, input.Platform, client.Capabilities().ExampleShape)
	if err != nil {
		return nil, err
	}

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	tickets, err := llm.DecodeTickets(raw)
	if err != nil {
		return nil, err
	}

	collection := &domain.TicketCollection{
		DocumentID:      input.DocumentID,
		CreatedDatetime: input.CreatedDatetime,
		Tickets:         tickets,
		OriginalPrompt:  prompt,
	}
	if err := s.tickets.SaveCollection(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("tickets saved",
		zap.String("document_id", collection.DocumentID),
		zap.String("created_datetime", collection.CreatedDatetime),
		zap.Int("ticket_count", len(collection.Tickets)),
	)
	return collection, nil
}

// ExpandTicket expands a ticket from a previously stored collection into a
// persisted sub-ticket collection, reusing the collection's original prompt
// as context.
func (s *TicketService) ExpandTicket(ctx context.Context, client llm.Client, input ExpandInput) (*domain.SubTicketCollection, error) {
	if input.UserID == "" {
		return nil, util.NewValidationError("user_id is required", nil)
	}
	if input.SubTicketID == "" {
		return nil, util.NewValidationError("sub_ticket_id is required", nil)
	}
	if input.DocumentID == "" || input.CreatedDatetime == "" {
		return nil, util.NewValidationError("document_id and generation_datetime are required to locate the parent collection", nil)
	}

	parent, err := s.tickets.GetCollection(ctx, input.DocumentID, input.CreatedDatetime)
	if err != nil {
		return nil, err
	}

	prompt, err := llm.BuildExpansionPrompt(parent.OriginalPrompt, input.Ticket, input.NumberOfSubTickets)
	if err != nil {
		return nil, err
	}

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	tickets, err := llm.DecodeTickets(raw)
	if err != nil {
		return nil, err
	}

	collection := &domain.SubTicketCollection{
		UserID:          input.UserID,
		SubTicketID:     input.SubTicketID,
		Tickets:         tickets,
		SubTicketPrompt: prompt,
		CreatedDatetime: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.tickets.SaveSubTickets(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("sub-tickets saved",
		zap.String("user_id", collection.UserID),
		zap.String("sub_ticket_id", collection.SubTicketID),
		zap.Int("ticket_count", len(collection.Tickets)),
	)
	return collection, nil
}

// GetCollection fetches a stored collection by its key.
func (s *TicketService) GetCollection(ctx context.Context, documentID, createdDatetime string) (*domain.TicketCollection, error) {
	if documentID == "" || createdDatetime == "" {
		return nil, util.NewValidationError("document_id and created_datetime are required", nil)
	}
	return s.tickets.GetCollection(ctx, documentID, createdDatetime)
}

// DeleteCollection removes a stored collection by its key.
func (s *TicketService) DeleteCollection(ctx context.Context, documentID, createdDatetime string) error {
	if documentID == "" || createdDatetime == "" {
		return util.NewValidationError("document_id and created_datetime are required", nil)
	}
	return s.tickets.DeleteCollection(ctx, documentID, createdDatetime)
}

// DeleteSubTickets removes a stored sub-ticket collection by its key.
func (s *TicketService) DeleteSubTickets(ctx context.Context, userID, subTicketID string) error {
	if userID == "" || subTicketID == "" {
		return util.NewValidationError("user_id and sub_ticket_id are required", nil)
	}
	return s.tickets.DeleteSubTickets(ctx, userID, subTicketID)
}
