package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/transcriptions-ai/transcriber/internal/api/dto"
	"github.com/transcriptions-ai/transcriber/internal/service"
)

// CollectionsHandler exposes read and delete access to stored collections.
type CollectionsHandler struct {
	service *service.TicketService
}

// NewCollectionsHandler constructs handler.
func NewCollectionsHandler(ticketService *service.TicketService) *CollectionsHandler {
	return &CollectionsHandler{service: ticketService}
}

// Get GET /collections/:document_id/:created_datetime.
func (h *CollectionsHandler) Get(c *fiber.Ctx) error {
	collection, err := h.service.GetCollection(c.UserContext(), c.Params("document_id"), c.Params("created_datetime"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CollectionFromDomain(collection)})
}

// Delete DELETE /collections/:document_id/:created_datetime.
func (h *CollectionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteCollection(c.UserContext(), c.Params("document_id"), c.Params("created_datetime")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSubTickets DELETE /sub-tickets/:user_id/:sub_ticket_id.
func (h *CollectionsHandler) DeleteSubTickets(c *fiber.Ctx) error {
	if err := h.service.DeleteSubTickets(c.UserContext(), c.Params("user_id"), c.Params("sub_ticket_id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
