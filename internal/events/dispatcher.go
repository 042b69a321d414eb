package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/domain"
	"github.com/transcriptions-ai/transcriber/internal/llm"
	"github.com/transcriptions-ai/transcriber/internal/observability"
	"github.com/transcriptions-ai/transcriber/internal/service"
	"github.com/transcriptions-ai/transcriber/pkg/util"
)

const (
	defaultTicketCount    = 10
	defaultSubTicketCount = 3
)

// Dispatcher resolves the provider client from the inbound event and runs
// the matching pipeline operation. One invocation, one linear pipeline, no
// internal retry; the host environment owns re-delivery.
type Dispatcher struct {
	providers *llm.Registry
	service   *service.TicketService
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDispatcher constructs the dispatcher.
func NewDispatcher(providers *llm.Registry, ticketService *service.TicketService, metrics *observability.Metrics, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		providers: providers,
		service:   ticketService,
		metrics:   metrics,
		logger:    logger,
	}
}

// Dispatch validates the event, applies defaults, and executes the selected
// operation to completion.
func (d *Dispatcher) Dispatch(ctx context.Context, event InvocationEvent) (*Result, error) {
	if event.IsWarm() {
		d.logger.Debug("warm event received")
		return &Result{Status: "warmed"}, nil
	}

	logger := d.logger.With(zap.String("invocation_id", uuid.NewString()))

	eventType := event.Event
	if eventType == "" {
		eventType = EventTicketGeneration
	}

	provider := event.Client
	if provider == "" {
		provider = domain.ProviderOpenAI
	}
	client, err := d.providers.Client(provider)
	if err != nil {
		return nil, err
	}

	logger.Info("dispatching event",
		zap.String("event", string(eventType)),
		zap.String("client", string(provider)),
		zap.String("document_id", event.DocumentID),
	)

	switch eventType {
	case EventTicketGeneration:
		return d.generate(ctx, client, event, logger)
	case EventTicketExpansion:
		return d.expand(ctx, client, event, logger)
	default:
		return nil, util.NewValidationError(fmt.Sprintf("unknown event %q", string(event.Event)), nil)
	}
}

func (d *Dispatcher) generate(ctx context.Context, client llm.Client, event InvocationEvent, logger *zap.Logger) (*Result, error) {
	input := service.GenerateInput{
		DocumentID:      event.DocumentID,
		CreatedDatetime: event.GenerationDatetime,
		NumberOfTickets: event.NumberOfTickets,
		Platform:        event.Platform,
	}
	if input.NumberOfTickets == 0 {
		input.NumberOfTickets = defaultTicketCount
	}
	if input.Platform == "" {
		input.Platform = domain.PlatformJira
	}
	// Collection identity is assigned here, once, and never changes.
	if input.CreatedDatetime == "" {
		input.CreatedDatetime = time.Now().UTC().Format(time.RFC3339)
	}

	collection, err := d.service.GenerateTickets(ctx, client, input)
	d.metrics.RecordPipeline("ticket_generation", err == nil)
	if err != nil {
		logger.Error("ticket generation failed", zap.Error(err))
		return nil, err
	}

	return &Result{
		Status:          "ok",
		Operation:       EventTicketGeneration,
		DocumentID:      collection.DocumentID,
		CreatedDatetime: collection.CreatedDatetime,
		TicketCount:     len(collection.Tickets),
	}, nil
}

func (d *Dispatcher) expand(ctx context.Context, client llm.Client, event InvocationEvent, logger *zap.Logger) (*Result, error) {
	input := service.ExpandInput{
		DocumentID:         event.DocumentID,
		CreatedDatetime:    event.GenerationDatetime,
		UserID:             event.UserID,
		SubTicketID:        event.SubTicketID,
		Ticket:             event.Ticket,
		NumberOfSubTickets: event.NumberOfTickets,
	}
	if input.NumberOfSubTickets == 0 {
		input.NumberOfSubTickets = defaultSubTicketCount
	}

	collection, err := d.service.ExpandTicket(ctx, client, input)
	d.metrics.RecordPipeline("ticket_expansion", err == nil)
	if err != nil {
		logger.Error("ticket expansion failed", zap.Error(err))
		return nil, err
	}

	return &Result{
		Status:      "ok",
		Operation:   EventTicketExpansion,
		UserID:      collection.UserID,
		SubTicketID: collection.SubTicketID,
		TicketCount: len(collection.Tickets),
	}, nil
}
