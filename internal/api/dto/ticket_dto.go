package dto

import "github.com/Yashanki/krux-support/internal/domain"

// TicketSummary is the dashboard list row.
type TicketSummary struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	CreatedAt    string `json:"created_at"`
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
}

// TicketDetail is the full ticket view including the conversation snapshot
// taken at escalation time.
type TicketDetail struct {
	TicketSummary
	Messages []ChatMessage `json:"messages"`
}

// NewTicketSummary maps a domain ticket to its list row.
func NewTicketSummary(t domain.Ticket) TicketSummary {
	return TicketSummary{
		ID:           t.ID,
		CustomerName: t.Customer.Name,
		Phone:        t.Customer.Phone,
		CreatedAt:    t.CreatedAt,
		Status:       string(t.Status),
		MessageCount: len(t.Messages),
	}
}
