// Package kvstore provides the durable key-value substrate the session and
// ticket state is mirrored into. The contract mirrors browser local storage:
// string keys, string values, synchronous access, no failure surface.
// Backends that can fail internally (file, redis) log and degrade to
// absent/no-op instead of returning errors.
package kvstore

// Store is the persistence contract.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set writes value under key, overwriting any previous value.
	Set(key, value string)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}

// Durable record keys. Everything lives in one flat namespace.
const (
	// KeyActiveCustomer holds the phone of the signed-in customer.
	KeyActiveCustomer = "active_customer_pointer"
	// KeyAgentSession holds the agent profile record while an agent is
	// signed in. When present it takes precedence over the customer
	// pointer during initialization.
	KeyAgentSession = "agent_session"
	// KeyAllTickets holds the global ticket collection. This is the only
	// ticket record; per-customer views are computed from it on read.
	KeyAllTickets = "all_tickets"
)

// ProfileKey returns the record key for a customer profile.
func ProfileKey(phone string) string {
	return "profile_" + phone
}

// ConversationKey returns the record key for a customer's conversation log.
func ConversationKey(phone string) string {
	return "conversation_" + phone
}
