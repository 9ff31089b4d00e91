package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TicketStatus enumerates ticket lifecycle states. The only transition is
// Open to Resolved.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "Open"
	TicketStatusResolved TicketStatus = "Resolved"
)

// Ticket is a support request escalated from a chat conversation. Customer
// and Messages are snapshots taken at creation: later chat turns and profile
// edits do not show up in the ticket.
type Ticket struct {
	ID        string       `json:"id"`
	Customer  User         `json:"customer"`
	CreatedAt string       `json:"createdAt"`
	Status    TicketStatus `json:"status"`
	Messages  []Message    `json:"messages"`
}

// NewTicketID returns a fresh ticket identifier. The suffix comes from a
// UUID rather than a 4-digit random number so two escalations cannot
// realistically collide.
func NewTicketID() string {
	return "TCKT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Validate checks the fixed record shape for tickets loaded from the
// durable store.
func (t Ticket) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("ticket record missing id")
	}
	if t.Status != TicketStatusOpen && t.Status != TicketStatusResolved {
		return fmt.Errorf("ticket %s has unknown status %q", t.ID, t.Status)
	}
	if err := t.Customer.Validate(); err != nil {
		return fmt.Errorf("ticket %s: %w", t.ID, err)
	}
	for _, m := range t.Messages {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("ticket %s: %w", t.ID, err)
		}
	}
	return nil
}

// CloneMessages returns an independent copy of a message slice, used when
// snapshotting a conversation into a ticket.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
