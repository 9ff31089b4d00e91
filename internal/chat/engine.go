// Package chat implements the customer-facing chatbot: a per-conversation
// message log plus a deterministic reply decision over the session state.
package chat

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/store"
	"github.com/Yashanki/krux-support/internal/timefmt"
)

// DefaultReplyDelay matches the original typing pause.
const DefaultReplyDelay = 700 * time.Millisecond

// Options tune the engine. A zero or negative ReplyDelay makes the bot
// reply synchronously inside SendMessage, which is what tests want.
type Options struct {
	ReplyDelay time.Duration
	Now        func() time.Time
}

// Engine drives one customer conversation at a time, the one belonging to
// the store's current user.
type Engine struct {
	store  *store.Store
	logger *zap.Logger
	delay  time.Duration
	now    func() time.Time

	mu     sync.Mutex
	typing bool
}

// NewEngine constructs the engine.
func NewEngine(st *store.Store, logger *zap.Logger, opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:  st,
		logger: logger,
		delay:  opts.ReplyDelay,
		now:    now,
	}
}

// SendMessage records a customer utterance and schedules the bot reply.
// Blank input and the absence of an identified customer are rejected as
// silent no-ops; the return value reports whether the message was taken.
// There is no abort path: once accepted, the reply will be appended after
// the configured delay.
func (e *Engine) SendMessage(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	user, ok := e.store.CurrentUser()
	if !ok || !user.IsCustomer() {
		return false
	}

	msg := domain.NewMessage(domain.SenderUser, text, e.now())
	conversation := e.store.AppendMessage(user.Phone, msg)

	e.setTyping(true)
	if e.delay <= 0 {
		e.reply(user, msg.Text, conversation)
		return true
	}
	time.AfterFunc(e.delay, func() {
		e.reply(user, msg.Text, conversation)
	})
	return true
}

// Typing reports whether a bot reply is pending, for the typing indicator.
func (e *Engine) Typing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.typing
}

func (e *Engine) reply(user domain.User, text string, conversation []domain.Message) {
	replyText := e.decide(strings.ToLower(text), user, conversation)
	e.store.AppendMessage(user.Phone, domain.NewMessage(domain.SenderBot, replyText, e.now()))
	e.setTyping(false)
}

// decide picks the bot reply for the latest user utterance. Fixed priority,
// first match wins: status lookups are recognized ahead of the loan and
// document keywords so "status of my loan" reports the ticket rather than
// pitching loan products.
func (e *Engine) decide(lower string, user domain.User, conversation []domain.Message) string {
	switch {
	case strings.Contains(lower, "status"):
		return e.statusReply(user)
	case strings.Contains(lower, "loan"):
		return replyLoanOptions
	case strings.Contains(lower, "document"):
		return replyDocumentChecklist
	case strings.Contains(lower, "human") || strings.Contains(lower, "agent"):
		return e.escalate(user, conversation)
	default:
		return replyFallback
	}
}

// statusReply reports the last-appended ticket for the customer: last in
// insertion order, not the most recently updated one.
func (e *Engine) statusReply(user domain.User) string {
	tickets := e.store.Snapshot().CurrentUserTickets
	if len(tickets) == 0 {
		return replyNoOpenTickets
	}
	latest := tickets[len(tickets)-1]
	return fmt.Sprintf("Your latest ticket (%s) is currently *%s*.\nCreated on %s.",
		latest.ID, latest.Status, latest.CreatedAt)
}

// escalate creates a support ticket carrying a snapshot of the customer
// and of the conversation so far, including the message that asked for a
// human. Asking twice makes two tickets; there is no dedup, by design.
func (e *Engine) escalate(user domain.User, conversation []domain.Message) string {
	ticket := domain.Ticket{
		ID:        domain.NewTicketID(),
		Customer:  user,
		CreatedAt: timefmt.DisplayStamp(e.now()),
		Status:    domain.TicketStatusOpen,
		Messages:  domain.CloneMessages(conversation),
	}
	e.store.AddTicket(ticket)
	e.logger.Info("conversation escalated", zap.String("ticket_id", ticket.ID))
	return fmt.Sprintf("Sure! I've created a support ticket for you.\nTicket ID: %s\nAn agent will reach out soon.", ticket.ID)
}

func (e *Engine) setTyping(v bool) {
	e.mu.Lock()
	e.typing = v
	e.mu.Unlock()
}
