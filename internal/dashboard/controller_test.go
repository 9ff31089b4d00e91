package dashboard

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/kvstore"
	"github.com/Yashanki/krux-support/internal/store"
)

func newTestController(t *testing.T) (*Controller, *store.Store) {
	t.Helper()
	st := store.New(kvstore.NewMemory(), nil, zap.NewNop())
	st.Initialize()
	return NewController(st), st
}

func openTicket(id string) domain.Ticket {
	return domain.Ticket{
		ID:        id,
		Customer:  domain.Customer("Rahul Sharma", "+919876543210"),
		CreatedAt: "15/06/2024 10:00",
		Status:    domain.TicketStatusOpen,
	}
}

func TestSelectTicket(t *testing.T) {
	t.Parallel()
	c, st := newTestController(t)
	st.AddTicket(openTicket("TCKT-AAAA1111"))

	if !c.SelectTicket("TCKT-AAAA1111") {
		t.Fatal("SelectTicket did not find an existing ticket")
	}
	active, ok := c.ActiveTicket()
	if !ok || active.ID != "TCKT-AAAA1111" {
		t.Errorf("ActiveTicket: got %+v, want TCKT-AAAA1111", active)
	}
}

func TestSelectUnknownTicketClearsSelection(t *testing.T) {
	t.Parallel()
	c, st := newTestController(t)
	st.AddTicket(openTicket("TCKT-AAAA1111"))
	c.SelectTicket("TCKT-AAAA1111")

	if c.SelectTicket("nonexistent-id") {
		t.Error("SelectTicket reported success for an unknown id")
	}
	if _, ok := c.ActiveTicket(); ok {
		t.Error("selection survived selecting an unknown id")
	}
}

func TestResolveTicketClearsSelection(t *testing.T) {
	t.Parallel()
	c, st := newTestController(t)
	st.AddTicket(openTicket("TCKT-BBBB2222"))
	c.SelectTicket("TCKT-BBBB2222")

	c.ResolveTicket("TCKT-BBBB2222")

	if _, ok := c.ActiveTicket(); ok {
		t.Error("selection survived resolving")
	}
	if got := st.Snapshot().AllTickets[0].Status; got != domain.TicketStatusResolved {
		t.Errorf("ticket status: got %q, want %q", got, domain.TicketStatusResolved)
	}
}

func TestTicketsRefreshesFromDurableStore(t *testing.T) {
	t.Parallel()
	kv := kvstore.NewMemory()
	st := store.New(kv, nil, zap.NewNop())
	st.Initialize()
	c := NewController(st)

	// A second session writes a ticket into the shared durable store; the
	// dashboard listing must pick it up.
	other := store.New(kv, nil, zap.NewNop())
	other.Initialize()
	other.AddTicket(openTicket("TCKT-CCCC3333"))

	got := c.Tickets()
	if len(got) != 1 || got[0].ID != "TCKT-CCCC3333" {
		t.Errorf("Tickets: got %+v, want the externally created ticket", got)
	}
}
