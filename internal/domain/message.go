package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sender indicates who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn in a customer conversation. Time is an RFC 3339
// instant kept as a string: display code must tolerate malformed values
// rather than reject the whole record.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

// NewMessage stamps a message with the given instant.
func NewMessage(sender Sender, text string, at time.Time) Message {
	return Message{
		Sender: sender,
		Text:   strings.TrimSpace(text),
		Time:   at.Format(time.RFC3339),
	}
}

// Validate checks the record shape for messages loaded from the durable
// store. A malformed Time is allowed through; an unknown sender is not.
func (m Message) Validate() error {
	if m.Sender != SenderUser && m.Sender != SenderBot {
		return fmt.Errorf("unknown message sender %q", m.Sender)
	}
	return nil
}
