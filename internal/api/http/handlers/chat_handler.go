package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Yashanki/krux-support/internal/api/dto"
	"github.com/Yashanki/krux-support/internal/chat"
	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/store"
	"github.com/Yashanki/krux-support/internal/timefmt"
	apperrors "github.com/Yashanki/krux-support/pkg/util"
)

// ChatHandler exposes the current customer's conversation.
type ChatHandler struct {
	store  *store.Store
	engine *chat.Engine
}

// NewChatHandler constructs the handler.
func NewChatHandler(st *store.Store, engine *chat.Engine) *ChatHandler {
	return &ChatHandler{store: st, engine: engine}
}

// Messages GET /chat/messages.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	user, ok := h.store.CurrentUser()
	if !ok || !user.IsCustomer() {
		return apperrors.NewForbidden("customer session required")
	}
	log := h.store.Conversation(user.Phone)
	return c.JSON(fiber.Map{"data": renderConversation(log, time.Now())})
}

// Send POST /chat/messages.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	user, ok := h.store.CurrentUser()
	if !ok || !user.IsCustomer() {
		return apperrors.NewForbidden("customer session required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	accepted := h.engine.SendMessage(req.Text)
	return c.JSON(fiber.Map{"data": dto.SendMessageResponse{
		Accepted: accepted,
		Typing:   h.engine.Typing(),
	}})
}

// Typing GET /chat/typing.
func (h *ChatHandler) Typing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"typing": h.engine.Typing()}})
}

// renderConversation decorates messages with bubble times and date
// separators: a separator appears on the first message of each calendar
// day.
func renderConversation(log []domain.Message, now time.Time) []dto.ChatMessage {
	out := make([]dto.ChatMessage, 0, len(log))
	for i, m := range log {
		rendered := dto.ChatMessage{
			Sender: string(m.Sender),
			Text:   m.Text,
			Time:   m.Time,
			Bubble: timefmt.FormatBubble(m.Time, now),
		}
		if i == 0 || !timefmt.SameCalendarDay(log[i-1].Time, m.Time) {
			rendered.Separator = timefmt.DateSeparator(m.Time, now)
		}
		out = append(out, rendered)
	}
	return out
}
