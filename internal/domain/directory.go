package domain

// Directory is the static in-memory list of known users. Login looks the
// identifier up here; nothing is verified beyond membership.
type Directory struct {
	customers []User
	agents    []User
}

// DefaultDirectory returns the demo user list.
func DefaultDirectory() *Directory {
	return &Directory{
		customers: []User{
			Customer("Rahul Sharma", "+919876543210"),
			Customer("Priya Patel", "+919876543211"),
		},
		agents: []User{
			Agent("Support Agent", "amit.kumar"),
			Agent("Senior Agent", "sneha.singh"),
		},
	}
}

// CustomerByPhone looks up a customer by phone.
func (d *Directory) CustomerByPhone(phone string) (User, bool) {
	for _, u := range d.customers {
		if u.Phone == phone {
			return u, true
		}
	}
	return User{}, false
}

// AgentByUsername looks up an agent by username.
func (d *Directory) AgentByUsername(username string) (User, bool) {
	for _, u := range d.agents {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// Customers returns the known customer list in declaration order.
func (d *Directory) Customers() []User {
	out := make([]User, len(d.customers))
	copy(out, d.customers)
	return out
}
