package chat

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/kvstore"
	"github.com/Yashanki/krux-support/internal/store"
)

const testPhone = "+919876543210"

// newTestEngine returns an engine replying synchronously over a fresh
// store with a logged-in customer.
func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st := store.New(kvstore.NewMemory(), nil, zap.NewNop())
	st.Initialize()
	st.Login(domain.Customer("Rahul Sharma", testPhone))
	engine := NewEngine(st, zap.NewNop(), Options{ReplyDelay: 0})
	return engine, st
}

func lastMessage(t *testing.T, st *store.Store, phone string) domain.Message {
	t.Helper()
	log := st.Conversation(phone)
	if len(log) == 0 {
		t.Fatal("conversation is empty")
	}
	return log[len(log)-1]
}

func TestSendMessageRejectsBlankInput(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	if engine.SendMessage("   \t  ") {
		t.Error("SendMessage accepted whitespace-only input")
	}
	if engine.SendMessage("") {
		t.Error("SendMessage accepted empty input")
	}
	if got := st.Conversation(testPhone); len(got) != 0 {
		t.Errorf("conversation after blank sends: got %d messages, want 0", len(got))
	}
}

func TestSendMessageRequiresCustomer(t *testing.T) {
	t.Parallel()
	st := store.New(kvstore.NewMemory(), nil, zap.NewNop())
	st.Initialize()
	engine := NewEngine(st, zap.NewNop(), Options{ReplyDelay: 0})

	if engine.SendMessage("hello") {
		t.Error("SendMessage accepted input with no customer signed in")
	}

	st.Login(domain.Agent("Support Agent", "amit.kumar"))
	if engine.SendMessage("hello") {
		t.Error("SendMessage accepted input from an agent session")
	}
}

func TestBotReplyAppendedSynchronouslyWithZeroDelay(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("hello there")
	log := st.Conversation(testPhone)
	if len(log) != 2 {
		t.Fatalf("conversation length: got %d, want 2", len(log))
	}
	if log[0].Sender != domain.SenderUser || log[1].Sender != domain.SenderBot {
		t.Errorf("senders: got %q then %q, want user then bot", log[0].Sender, log[1].Sender)
	}
	if log[1].Text != replyFallback {
		t.Errorf("fallback reply: got %q, want %q", log[1].Text, replyFallback)
	}
	if engine.Typing() {
		t.Error("typing still reported after synchronous reply")
	}
}

func TestStatusWinsOverLoanAndDocument(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("what is the status of my loan document")
	got := lastMessage(t, st, testPhone).Text
	if got != replyNoOpenTickets {
		t.Errorf("status branch reply: got %q, want %q", got, replyNoOpenTickets)
	}
}

func TestLoanWinsOverDocument(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("which documents do I need for a loan")
	got := lastMessage(t, st, testPhone).Text
	if got != replyLoanOptions {
		t.Errorf("loan/document priority: got %q, want %q", got, replyLoanOptions)
	}
}

func TestDocumentBranch(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("what documents are required")
	got := lastMessage(t, st, testPhone).Text
	if got != replyDocumentChecklist {
		t.Errorf("document reply: got %q, want %q", got, replyDocumentChecklist)
	}
}

func TestStatusReportsLastAppendedTicket(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	first := domain.Ticket{ID: "TCKT-AAAA1111", Customer: domain.Customer("Rahul Sharma", testPhone), CreatedAt: "01/06/2024 09:00", Status: domain.TicketStatusOpen}
	second := domain.Ticket{ID: "TCKT-BBBB2222", Customer: domain.Customer("Rahul Sharma", testPhone), CreatedAt: "02/06/2024 09:00", Status: domain.TicketStatusOpen}
	st.AddTicket(first)
	st.AddTicket(second)
	// Resolving the first ticket must not change which one "latest" is:
	// insertion order decides, not update recency.
	st.UpdateTicketStatus("TCKT-AAAA1111", domain.TicketStatusResolved)

	engine.SendMessage("status please")
	got := lastMessage(t, st, testPhone).Text
	if !strings.Contains(got, "TCKT-BBBB2222") {
		t.Errorf("status reply %q does not mention the last-appended ticket", got)
	}
	if !strings.Contains(got, string(domain.TicketStatusOpen)) {
		t.Errorf("status reply %q does not carry the ticket status", got)
	}
}

func TestEscalationCreatesTicketWithConversationSnapshot(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("hello")
	engine.SendMessage("I need a human")

	snap := st.Snapshot()
	if len(snap.AllTickets) != 1 {
		t.Fatalf("global tickets: got %d, want 1", len(snap.AllTickets))
	}
	ticket := snap.AllTickets[0]
	if ticket.Status != domain.TicketStatusOpen {
		t.Errorf("ticket status: got %q, want %q", ticket.Status, domain.TicketStatusOpen)
	}
	if ticket.Customer.Phone != testPhone {
		t.Errorf("ticket customer phone: got %q, want %q", ticket.Customer.Phone, testPhone)
	}
	// Snapshot covers the conversation up to and including the escalation
	// request: hello, its reply, and the request itself. The bot's
	// confirmation is appended after the snapshot is taken.
	if len(ticket.Messages) != 3 {
		t.Fatalf("ticket message snapshot: got %d messages, want 3", len(ticket.Messages))
	}
	if last := ticket.Messages[2]; last.Sender != domain.SenderUser || last.Text != "I need a human" {
		t.Errorf("snapshot tail: got %+v, want the escalation request", last)
	}
	if len(snap.CurrentUserTickets) != 1 || snap.CurrentUserTickets[0].ID != ticket.ID {
		t.Errorf("customer view: got %+v, want the new ticket", snap.CurrentUserTickets)
	}
	reply := lastMessage(t, st, testPhone).Text
	if !strings.Contains(reply, ticket.ID) {
		t.Errorf("reply %q does not echo the ticket id", reply)
	}
}

func TestEscalationSnapshotIsNotLive(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("agent please")
	before := len(st.Snapshot().AllTickets[0].Messages)

	engine.SendMessage("one more message")
	after := len(st.Snapshot().AllTickets[0].Messages)
	if before != after {
		t.Errorf("ticket snapshot grew from %d to %d messages after a later chat turn", before, after)
	}
}

func TestRepeatedEscalationCreatesSeparateTickets(t *testing.T) {
	t.Parallel()
	engine, st := newTestEngine(t)

	engine.SendMessage("I need a human")
	engine.SendMessage("I need a human")

	tickets := st.Snapshot().AllTickets
	if len(tickets) != 2 {
		t.Fatalf("tickets after two escalations: got %d, want 2", len(tickets))
	}
	if tickets[0].ID == tickets[1].ID {
		t.Errorf("both escalations produced id %q", tickets[0].ID)
	}
}

func TestDelayedReplyArrives(t *testing.T) {
	t.Parallel()
	st := store.New(kvstore.NewMemory(), nil, zap.NewNop())
	st.Initialize()
	st.Login(domain.Customer("Rahul Sharma", testPhone))
	engine := NewEngine(st, zap.NewNop(), Options{ReplyDelay: 50 * time.Millisecond})

	engine.SendMessage("hello")
	if got := len(st.Conversation(testPhone)); got != 1 {
		t.Fatalf("conversation before delay: got %d messages, want 1", got)
	}
	if !engine.Typing() {
		t.Error("typing not reported while reply is pending")
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(st.Conversation(testPhone)) < 2 {
		if time.Now().After(deadline) {
			t.Fatal("bot reply never arrived")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if engine.Typing() {
		t.Error("typing still reported after reply")
	}
}
