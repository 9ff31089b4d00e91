// Package store owns the canonical in-memory session and ticket state and
// mediates every read and write of the durable key-value substrate. It is
// the single writer in the system; the chat engine and dashboard go through
// it rather than touching record keys themselves.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/events"
	"github.com/Yashanki/krux-support/internal/kvstore"
)

// Store is the session and ticket store. Create one at the composition
// root and pass it to collaborators; there is no ambient global session.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.Store
	bus    events.Dispatcher
	logger *zap.Logger
	state  State
}

// New constructs a store over the given durable backend. The state starts
// uninitialized and loading; call Initialize before use.
func New(kv kvstore.Store, bus events.Dispatcher, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		bus:    bus,
		logger: logger,
		state:  State{Loading: true},
	}
}

// Initialize rehydrates state from the durable store on cold start. An
// agent session record, when present, takes precedence over a stale
// customer pointer; the two are mutually exclusive on the write side, so a
// surviving agent record means the agent session is the live one. The
// initialized/loading flip happens exactly once, even when nothing was
// stored; repeated calls are no-ops.
func (s *Store) Initialize() {
	s.mu.Lock()
	if s.state.Initialized {
		s.mu.Unlock()
		return
	}

	if agent, ok := s.loadUser(kvstore.KeyAgentSession); ok && agent.IsAgent() {
		s.apply(action{kind: actionSetUser, user: &agent})
	} else if phone, ok := s.kv.Get(kvstore.KeyActiveCustomer); ok && phone != "" {
		if customer, ok := s.loadUser(kvstore.ProfileKey(phone)); ok {
			s.apply(action{kind: actionSetUser, user: &customer})
		}
	}

	all := s.loadTickets(kvstore.KeyAllTickets)
	s.apply(action{kind: actionSetAll, tickets: all})
	if u := s.state.CurrentUser; u != nil && u.IsCustomer() {
		s.apply(action{kind: actionSetTickets, tickets: ticketsForPhone(all, u.Phone)})
	}
	s.apply(action{kind: actionInitialized})

	user := s.state.CurrentUser
	s.mu.Unlock()

	if user != nil {
		s.logger.Info("session restored", zap.String("role", string(user.Role)))
	} else {
		s.logger.Info("initialized with no active session")
	}
}

// Login activates the given identity and persists the session records.
// Customer profiles are written unconditionally (overwrite semantics); the
// conversation log is created only if absent so history survives repeat
// logins. Logging in as one role clears the other role's session record.
func (s *Store) Login(user domain.User) {
	if err := user.Validate(); err != nil {
		s.logger.Warn("rejecting login with invalid identity", zap.Error(err))
		return
	}

	s.mu.Lock()
	if user.IsAgent() {
		s.saveUser(kvstore.KeyAgentSession, user)
		s.kv.Remove(kvstore.KeyActiveCustomer)
		s.apply(action{kind: actionSetUser, user: &user})
		s.apply(action{kind: actionSetTickets, tickets: nil})
	} else {
		s.saveUser(kvstore.ProfileKey(user.Phone), user)
		s.kv.Set(kvstore.KeyActiveCustomer, user.Phone)
		s.kv.Remove(kvstore.KeyAgentSession)
		if _, ok := s.kv.Get(kvstore.ConversationKey(user.Phone)); !ok {
			s.saveMessages(kvstore.ConversationKey(user.Phone), nil)
		}
		all := s.loadTickets(kvstore.KeyAllTickets)
		s.apply(action{kind: actionSetAll, tickets: all})
		s.apply(action{kind: actionSetUser, user: &user})
		s.apply(action{kind: actionSetTickets, tickets: ticketsForPhone(all, user.Phone)})
	}
	s.mu.Unlock()

	eventType := events.EventCustomerLoggedIn
	if user.IsAgent() {
		eventType = events.EventAgentLoggedIn
	}
	s.publish(eventType, events.SessionPayload{User: user})
	s.logger.Info("user logged in", zap.String("role", string(user.Role)))
}

// Logout clears the active session. Per-phone profiles and conversation
// logs are kept so the customer's history is there on the next login.
func (s *Store) Logout() {
	s.mu.Lock()
	user := s.state.CurrentUser
	s.kv.Remove(kvstore.KeyActiveCustomer)
	s.kv.Remove(kvstore.KeyAgentSession)
	s.apply(action{kind: actionLogout})
	s.mu.Unlock()

	if user != nil {
		s.publish(events.EventLoggedOut, events.SessionPayload{User: *user})
		s.logger.Info("user logged out", zap.String("role", string(user.Role)))
	}
}

// AddTicket appends to the global ticket collection, in memory and in the
// durable store. The owning customer's subset is recomputed from the
// global collection, which is the single source for ticket records.
func (s *Store) AddTicket(ticket domain.Ticket) {
	s.mu.Lock()
	all := append(s.state.AllTickets, ticket)
	s.apply(action{kind: actionSetAll, tickets: all})
	s.saveTickets(kvstore.KeyAllTickets, all)
	s.refreshSubsetLocked()
	s.mu.Unlock()

	s.publish(events.EventTicketCreated, events.TicketPayload{
		TicketID: ticket.ID,
		Status:   ticket.Status,
		Phone:    ticket.Customer.Phone,
	})
	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("phone", ticket.Customer.Phone))
}

// UpdateTicketStatus replaces the status of the ticket with the given id
// and persists the collection. An unknown id is a silent no-op, as is any
// attempt to move a resolved ticket back to open; resolving twice is
// idempotent.
func (s *Store) UpdateTicketStatus(id string, status domain.TicketStatus) {
	s.mu.Lock()
	var updated *domain.Ticket
	all := s.state.AllTickets
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if all[i].Status == status || all[i].Status == domain.TicketStatusResolved {
			s.mu.Unlock()
			return
		}
		all[i].Status = status
		updated = &all[i]
		break
	}
	if updated == nil {
		s.mu.Unlock()
		s.logger.Debug("status update for unknown ticket", zap.String("ticket_id", id))
		return
	}
	s.saveTickets(kvstore.KeyAllTickets, all)
	s.refreshSubsetLocked()
	payload := events.TicketPayload{
		TicketID: updated.ID,
		Status:   updated.Status,
		Phone:    updated.Customer.Phone,
	}
	s.mu.Unlock()

	s.publish(events.EventTicketStatusChanged, payload)
	s.logger.Info("ticket status updated",
		zap.String("ticket_id", payload.TicketID),
		zap.String("status", string(payload.Status)))
}

// Refresh re-reads the global ticket collection from the durable store,
// picking up tickets created since the last load.
func (s *Store) Refresh() {
	s.mu.Lock()
	all := s.loadTickets(kvstore.KeyAllTickets)
	s.apply(action{kind: actionSetAll, tickets: all})
	s.refreshSubsetLocked()
	s.mu.Unlock()

	s.publish(events.EventTicketsRefreshed, nil)
}

// Conversation returns the durable conversation log for a phone.
func (s *Store) Conversation(phone string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadMessages(kvstore.ConversationKey(phone))
}

// AppendMessage appends to a customer's conversation log, persists it, and
// returns the updated log.
func (s *Store) AppendMessage(phone string, msg domain.Message) []domain.Message {
	s.mu.Lock()
	log := append(s.loadMessages(kvstore.ConversationKey(phone)), msg)
	s.saveMessages(kvstore.ConversationKey(phone), log)
	s.mu.Unlock()

	s.publish(events.EventMessageAppended, events.MessagePayload{Phone: phone, Message: msg})
	return log
}

// Snapshot returns a copy of the current state for readers.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// CurrentUser returns the active identity, if any.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return domain.User{}, false
	}
	return *s.state.CurrentUser, true
}

// refreshSubsetLocked recomputes the current customer's derived ticket
// subset from the in-memory global collection.
func (s *Store) refreshSubsetLocked() {
	u := s.state.CurrentUser
	if u == nil || !u.IsCustomer() {
		return
	}
	s.apply(action{kind: actionSetTickets, tickets: ticketsForPhone(s.state.AllTickets, u.Phone)})
}

func (s *Store) publish(eventType events.EventType, payload interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
