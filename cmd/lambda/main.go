package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/config"
	"github.com/transcriptions-ai/transcriber/internal/events"
	"github.com/transcriptions-ai/transcriber/internal/llm"
	"github.com/transcriptions-ai/transcriber/internal/observability"
	"github.com/transcriptions-ai/transcriber/internal/persistence"
	"github.com/transcriptions-ai/transcriber/internal/repository"
	"github.com/transcriptions-ai/transcriber/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	awsClients, err := persistence.NewAWS(context.Background(), cfg.AWS, logger)
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	transcriptRepo := repository.NewTranscriptRepository(awsClients.S3, cfg.Storage.TranscriptBucket)
	ticketRepo := repository.NewTicketRepository(awsClients.Dynamo, cfg.Storage.TicketTable, cfg.Storage.SubTicketTable)

	providers := llm.NewRegistry(
		llm.NewOpenAIClient(cfg.LLM, logger),
		llm.NewAnthropicClient(cfg.LLM, logger),
	)

	ticketService := service.NewTicketService(service.TicketDependencies{
		TranscriptRepo: transcriptRepo,
		TicketRepo:     ticketRepo,
		Logger:         logger,
	})

	dispatcher := events.NewDispatcher(providers, ticketService, observability.NewMetrics(), logger)

	lambda.Start(func(ctx context.Context, event events.InvocationEvent) (*events.Result, error) {
		return dispatcher.Dispatch(ctx, event)
	})
}
