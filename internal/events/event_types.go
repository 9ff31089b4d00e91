package events

import (
	"time"

	"github.com/Yashanki/krux-support/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerLoggedIn    EventType = "customer_logged_in"
	EventAgentLoggedIn       EventType = "agent_logged_in"
	EventLoggedOut           EventType = "logged_out"
	EventMessageAppended     EventType = "message_appended"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketsRefreshed    EventType = "tickets_refreshed"
)

// Event is a state-change notification emitted by the store and the chat
// engine. The presentation layer subscribes to these to stay current.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// SessionPayload accompanies login/logout events.
type SessionPayload struct {
	User domain.User `json:"user"`
}

// MessagePayload accompanies message_appended.
type MessagePayload struct {
	Phone   string         `json:"phone"`
	Message domain.Message `json:"message"`
}

// TicketPayload accompanies ticket_created and ticket_status_changed.
type TicketPayload struct {
	TicketID string              `json:"ticket_id"`
	Status   domain.TicketStatus `json:"status"`
	Phone    string              `json:"phone,omitempty"`
}
