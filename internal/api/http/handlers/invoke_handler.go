package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/transcriptions-ai/transcriber/internal/events"
	apperrors "github.com/transcriptions-ai/transcriber/pkg/util"
)

// InvokeHandler exposes the event pipeline over HTTP for local development.
type InvokeHandler struct {
	dispatcher *events.Dispatcher
}

// NewInvokeHandler constructs handler.
func NewInvokeHandler(dispatcher *events.Dispatcher) *InvokeHandler {
	return &InvokeHandler{dispatcher: dispatcher}
}

// Invoke POST /invoke.
func (h *InvokeHandler) Invoke(c *fiber.Ctx) error {
	var event events.InvocationEvent
	if err := c.BodyParser(&event); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	result, err := h.dispatcher.Dispatch(c.UserContext(), event)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
