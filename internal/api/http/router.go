package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/transcriptions-ai/transcriber/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Invoke      *handlers.InvokeHandler
	Collections *handlers.CollectionsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/invoke", cfg.Invoke.Invoke)

	app.Get("/collections/:document_id/:created_datetime", cfg.Collections.Get)
	app.Delete("/collections/:document_id/:created_datetime", cfg.Collections.Delete)
	app.Delete("/sub-tickets/:user_id/:sub_ticket_id", cfg.Collections.DeleteSubTickets)
}
