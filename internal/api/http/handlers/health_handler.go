package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/transcriptions-ai/transcriber/internal/config"
	"github.com/transcriptions-ai/transcriber/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	aws         *persistence.AWS
	storage     config.StorageConfig
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, aws *persistence.AWS, storage config.StorageConfig) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, aws: aws, storage: storage}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if err := h.aws.PingDynamo(ctx, h.storage.TicketTable); err != nil {
		depStatus["dynamodb"] = err.Error()
		ready = false
	} else {
		depStatus["dynamodb"] = "ok"
	}

	if err := h.aws.PingS3(ctx, h.storage.TranscriptBucket); err != nil {
		depStatus["s3"] = err.Error()
		ready = false
	} else {
		depStatus["s3"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
