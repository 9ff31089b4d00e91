package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yashanki/krux-support/internal/api/dto"
	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/store"
	apperrors "github.com/Yashanki/krux-support/pkg/util"
)

// SessionHandler exposes login, logout and the state snapshot.
type SessionHandler struct {
	store     *store.Store
	directory *domain.Directory
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(st *store.Store, directory *domain.Directory) *SessionHandler {
	return &SessionHandler{store: st, directory: directory}
}

// Login POST /session/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Identifier == "" {
		return apperrors.NewValidationError("identifier required", nil)
	}

	var user domain.User
	var found bool
	switch domain.Role(req.Role) {
	case domain.RoleCustomer:
		user, found = h.directory.CustomerByPhone(req.Identifier)
	case domain.RoleAgent:
		user, found = h.directory.AgentByUsername(req.Identifier)
	default:
		return apperrors.NewValidationError("role must be customer or agent", nil)
	}
	if !found {
		return apperrors.NewNotFound("user", map[string]any{"identifier": req.Identifier})
	}

	h.store.Login(user)
	return c.JSON(fiber.Map{"data": h.sessionResponse()})
}

// Logout POST /session/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.JSON(fiber.Map{"data": h.sessionResponse()})
}

// Session GET /session.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.sessionResponse()})
}

func (h *SessionHandler) sessionResponse() dto.SessionResponse {
	snap := h.store.Snapshot()
	return dto.SessionResponse{
		User:        snap.CurrentUser,
		TicketCount: len(snap.CurrentUserTickets),
		Initialized: snap.Initialized,
		Loading:     snap.Loading,
	}
}
