package store

import "github.com/Yashanki/krux-support/internal/domain"

// State is the canonical in-memory session snapshot. The durable store is
// the source of truth: State is rebuilt from it on initialization and
// whenever the active identity changes.
type State struct {
	CurrentUser        *domain.User    `json:"currentUser"`
	CurrentUserTickets []domain.Ticket `json:"currentUserTickets"`
	AllTickets         []domain.Ticket `json:"allTickets"`
	Initialized        bool            `json:"initialized"`
	Loading            bool            `json:"loading"`
}

type actionKind string

const (
	actionSetUser     actionKind = "set_user"
	actionSetTickets  actionKind = "set_tickets"
	actionSetAll      actionKind = "set_all_tickets"
	actionLogout      actionKind = "logout"
	actionInitialized actionKind = "initialized"
)

// action is one state mutation. All in-memory changes flow through apply so
// there is a single place where State transitions happen.
type action struct {
	kind    actionKind
	user    *domain.User
	tickets []domain.Ticket
}

// apply folds an action into the state. Callers hold the write lock.
func (s *Store) apply(a action) {
	switch a.kind {
	case actionSetUser:
		s.state.CurrentUser = a.user
	case actionSetTickets:
		s.state.CurrentUserTickets = a.tickets
	case actionSetAll:
		s.state.AllTickets = a.tickets
	case actionLogout:
		s.state.CurrentUser = nil
		s.state.CurrentUserTickets = nil
	case actionInitialized:
		s.state.Initialized = true
		s.state.Loading = false
	}
}

// snapshotLocked copies the state for readers. Callers hold at least the
// read lock.
func (s *Store) snapshotLocked() State {
	out := State{
		Initialized: s.state.Initialized,
		Loading:     s.state.Loading,
	}
	if s.state.CurrentUser != nil {
		u := *s.state.CurrentUser
		out.CurrentUser = &u
	}
	out.CurrentUserTickets = cloneTickets(s.state.CurrentUserTickets)
	out.AllTickets = cloneTickets(s.state.AllTickets)
	return out
}

func cloneTickets(tickets []domain.Ticket) []domain.Ticket {
	if tickets == nil {
		return nil
	}
	out := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		t.Messages = domain.CloneMessages(t.Messages)
		out[i] = t
	}
	return out
}

// ticketsForPhone derives a customer's ticket subset from the global
// collection, preserving insertion order.
func ticketsForPhone(all []domain.Ticket, phone string) []domain.Ticket {
	var out []domain.Ticket
	for _, t := range all {
		if t.Customer.Phone == phone {
			out = append(out, t)
		}
	}
	return out
}
