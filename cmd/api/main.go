package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/transcriptions-ai/transcriber/internal/api/http"
	"github.com/transcriptions-ai/transcriber/internal/api/http/handlers"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	awsClients, err := persistence.NewAWS(ctx, cfg.AWS, logger)
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

	metrics := observability.NewMetrics()
	dispatcher := events.NewDispatcher(providers, ticketService, metrics, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, awsClients, cfg.Storage),
		Invoke:      handlers.NewInvokeHandler(dispatcher),
		Collections: handlers.NewCollectionsHandler(ticketService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
