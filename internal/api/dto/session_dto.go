package dto

import "github.com/Yashanki/krux-support/internal/domain"

// LoginRequest identifies who is signing in. Role selects the directory
// searched: customers by phone, agents by username.
type LoginRequest struct {
	Role       string `json:"role"`
	Identifier string `json:"identifier"`
}

// SessionResponse is the read-only state snapshot for the presentation
// layer.
type SessionResponse struct {
	User        *domain.User `json:"user"`
	TicketCount int          `json:"ticket_count"`
	Initialized bool         `json:"initialized"`
	Loading     bool         `json:"loading"`
}
