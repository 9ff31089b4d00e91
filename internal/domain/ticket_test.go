package domain

import (
	"strings"
	"testing"
)

func TestNewTicketIDShape(t *testing.T) {
	t.Parallel()
	id := NewTicketID()
	if !strings.HasPrefix(id, "TCKT-") {
		t.Errorf("ticket id %q missing TCKT- prefix", id)
	}
	if len(id) != len("TCKT-")+8 {
		t.Errorf("ticket id %q has wrong length", id)
	}
	if id == NewTicketID() {
		t.Error("two generated ticket ids collided")
	}
}

func TestTicketValidate(t *testing.T) {
	t.Parallel()
	good := Ticket{
		ID:       "TCKT-AAAA1111",
		Customer: Customer("Rahul Sharma", "+919876543210"),
		Status:   TicketStatusOpen,
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid ticket rejected: %v", err)
	}

	noID := good
	noID.ID = ""
	if err := noID.Validate(); err == nil {
		t.Error("ticket without id accepted")
	}

	badStatus := good
	badStatus.Status = "Pending"
	if err := badStatus.Validate(); err == nil {
		t.Error("ticket with unknown status accepted")
	}

	badCustomer := good
	badCustomer.Customer = User{Role: RoleCustomer}
	if err := badCustomer.Validate(); err == nil {
		t.Error("ticket with phoneless customer accepted")
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()
	if err := Customer("Rahul Sharma", "+919876543210").Validate(); err != nil {
		t.Errorf("valid customer rejected: %v", err)
	}
	if err := Agent("Support Agent", "amit.kumar").Validate(); err != nil {
		t.Errorf("valid agent rejected: %v", err)
	}
	if err := (User{Role: "admin"}).Validate(); err == nil {
		t.Error("unknown role accepted")
	}
	if err := (User{Role: RoleAgent}).Validate(); err == nil {
		t.Error("agent without username accepted")
	}
}
