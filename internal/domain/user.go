package domain

import "fmt"

// Role discriminates the two kinds of users.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
)

// User is the identity bound to the active session. Customers are keyed by
// phone, agents by username; which identifier is set depends on Role.
type User struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
}

// Customer constructs a customer identity.
func Customer(name, phone string) User {
	return User{Name: name, Phone: phone, Role: RoleCustomer}
}

// Agent constructs an agent identity.
func Agent(name, username string) User {
	return User{Name: name, Username: username, Role: RoleAgent}
}

// IsCustomer reports whether the user is a customer with a usable phone key.
func (u User) IsCustomer() bool {
	return u.Role == RoleCustomer && u.Phone != ""
}

// IsAgent reports whether the user is an agent.
func (u User) IsAgent() bool {
	return u.Role == RoleAgent && u.Username != ""
}

// Validate checks the tagged-variant shape. Records loaded from the durable
// store must pass before they are trusted.
func (u User) Validate() error {
	switch u.Role {
	case RoleCustomer:
		if u.Phone == "" {
			return fmt.Errorf("customer record missing phone")
		}
	case RoleAgent:
		if u.Username == "" {
			return fmt.Errorf("agent record missing username")
		}
	default:
		return fmt.Errorf("unknown role %q", u.Role)
	}
	return nil
}
