// Package dashboard is the agent-side read/update surface over the global
// ticket collection.
package dashboard

import (
	"sync"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/store"
)

// Controller tracks which ticket the agent is looking at and delegates
// mutations to the store. The active-ticket reference is local to the
// controller and never persisted.
type Controller struct {
	store *store.Store

	mu     sync.Mutex
	active *domain.Ticket
}

// NewController constructs the controller.
func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}

// Tickets re-reads the global collection and returns it, so the dashboard
// picks up tickets created since the last look.
func (c *Controller) Tickets() []domain.Ticket {
	c.store.Refresh()
	return c.store.Snapshot().AllTickets
}

// SelectTicket marks the ticket with the given id as the one under review.
// Selecting an unknown id clears the selection and reports false.
func (c *Controller) SelectTicket(id string) bool {
	for _, t := range c.store.Snapshot().AllTickets {
		if t.ID == id {
			c.mu.Lock()
			c.active = &t
			c.mu.Unlock()
			return true
		}
	}
	c.mu.Lock()
	c.active = nil
	c.mu.Unlock()
	return false
}

// ActiveTicket returns the ticket under review, if any.
func (c *Controller) ActiveTicket() (domain.Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return domain.Ticket{}, false
	}
	return *c.active, true
}

// ResolveTicket marks the ticket resolved and clears the selection.
// Unknown ids fall through to the store's silent no-op.
func (c *Controller) ResolveTicket(id string) {
	c.store.UpdateTicketStatus(id, domain.TicketStatusResolved)
	c.mu.Lock()
	c.active = nil
	c.mu.Unlock()
}
