package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Yashanki/krux-support/internal/api/dto"
	"github.com/Yashanki/krux-support/internal/dashboard"
	"github.com/Yashanki/krux-support/internal/store"
	apperrors "github.com/Yashanki/krux-support/pkg/util"
)

// TicketsHandler exposes the agent dashboard operations.
type TicketsHandler struct {
	store      *store.Store
	controller *dashboard.Controller
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(st *store.Store, controller *dashboard.Controller) *TicketsHandler {
	return &TicketsHandler{store: st, controller: controller}
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	if err := h.requireAgent(); err != nil {
		return err
	}
	tickets := h.controller.Tickets()
	out := make([]dto.TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.NewTicketSummary(t))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Active GET /tickets/active.
func (h *TicketsHandler) Active(c *fiber.Ctx) error {
	if err := h.requireAgent(); err != nil {
		return err
	}
	ticket, ok := h.controller.ActiveTicket()
	if !ok {
		return c.JSON(fiber.Map{"data": nil})
	}
	detail := dto.TicketDetail{
		TicketSummary: dto.NewTicketSummary(ticket),
		Messages:      renderConversation(ticket.Messages, time.Now()),
	}
	return c.JSON(fiber.Map{"data": detail})
}

// Select POST /tickets/:id/select.
func (h *TicketsHandler) Select(c *fiber.Ctx) error {
	if err := h.requireAgent(); err != nil {
		return err
	}
	id := c.Params("id")
	if !h.controller.SelectTicket(id) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Resolve POST /tickets/:id/resolve.
func (h *TicketsHandler) Resolve(c *fiber.Ctx) error {
	if err := h.requireAgent(); err != nil {
		return err
	}
	h.controller.ResolveTicket(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TicketsHandler) requireAgent() error {
	user, ok := h.store.CurrentUser()
	if !ok || !user.IsAgent() {
		return apperrors.NewForbidden("agent session required")
	}
	return nil
}
