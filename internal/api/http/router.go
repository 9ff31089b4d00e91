package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashanki/krux-support/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Session *handlers.SessionHandler
	Chat    *handlers.ChatHandler
	Tickets *handlers.TicketsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	session := app.Group("/session")
	session.Get("", cfg.Session.Session)
	session.Post("/login", cfg.Session.Login)
	session.Post("/logout", cfg.Session.Logout)

	chatGroup := app.Group("/chat")
	chatGroup.Get("/messages", cfg.Chat.Messages)
	chatGroup.Post("/messages", cfg.Chat.Send)
	chatGroup.Get("/typing", cfg.Chat.Typing)

	tickets := app.Group("/tickets")
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/active", cfg.Tickets.Active)
	tickets.Post("/:id/select", cfg.Tickets.Select)
	tickets.Post("/:id/resolve", cfg.Tickets.Resolve)
}
