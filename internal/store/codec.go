package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
)

// Durable records are JSON. Decoding is defensive: a record that fails to
// decode or validate is discarded and the caller proceeds with empty state,
// per the recovery taxonomy for this demo data. Individual malformed
// entries inside a list record are skipped rather than poisoning the rest.

func (s *Store) loadUser(key string) (domain.User, bool) {
	raw, ok := s.kv.Get(key)
	if !ok {
		return domain.User{}, false
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("discarding malformed user record",
			zap.String("key", key), zap.Error(err))
		return domain.User{}, false
	}
	if err := user.Validate(); err != nil {
		s.logger.Warn("discarding invalid user record",
			zap.String("key", key), zap.Error(err))
		return domain.User{}, false
	}
	return user, true
}

func (s *Store) saveUser(key string, user domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("unable to encode user record", zap.String("key", key), zap.Error(err))
		return
	}
	s.kv.Set(key, string(raw))
}

func (s *Store) loadTickets(key string) []domain.Ticket {
	raw, ok := s.kv.Get(key)
	if !ok {
		return nil
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		s.logger.Warn("discarding malformed ticket collection",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	valid := tickets[:0]
	for _, t := range tickets {
		if err := t.Validate(); err != nil {
			s.logger.Warn("skipping invalid ticket record",
				zap.String("key", key), zap.Error(err))
			continue
		}
		valid = append(valid, t)
	}
	return valid
}

func (s *Store) saveTickets(key string, tickets []domain.Ticket) {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		s.logger.Warn("unable to encode ticket collection", zap.String("key", key), zap.Error(err))
		return
	}
	s.kv.Set(key, string(raw))
}

func (s *Store) loadMessages(key string) []domain.Message {
	raw, ok := s.kv.Get(key)
	if !ok {
		return nil
	}
	var msgs []domain.Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		s.logger.Warn("discarding malformed conversation log",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	valid := msgs[:0]
	for _, m := range msgs {
		if err := m.Validate(); err != nil {
			s.logger.Warn("skipping invalid message record",
				zap.String("key", key), zap.Error(err))
			continue
		}
		valid = append(valid, m)
	}
	return valid
}

func (s *Store) saveMessages(key string, msgs []domain.Message) {
	if msgs == nil {
		msgs = []domain.Message{}
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		s.logger.Warn("unable to encode conversation log", zap.String("key", key), zap.Error(err))
		return
	}
	s.kv.Set(key, string(raw))
}
