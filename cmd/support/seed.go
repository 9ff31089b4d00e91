package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/Yashanki/krux-support/internal/domain"
	"github.com/Yashanki/krux-support/internal/store"
)

// seedDemoConversation backfills the first directory customer with a
// conversation spread over several days, so the date separators and bubble
// formats have something to show. Skipped when the customer already has
// history.
func seedDemoConversation(st *store.Store, directory *domain.Directory, logger *zap.Logger) {
	customers := directory.Customers()
	if len(customers) == 0 {
		return
	}
	phone := customers[0].Phone
	if len(st.Conversation(phone)) > 0 {
		return
	}

	now := time.Now()
	turns := []struct {
		sender domain.Sender
		text   string
		at     time.Time
	}{
		{domain.SenderUser, "Hello, I need help with my loan application", now.AddDate(0, -1, 0)},
		{domain.SenderBot, "I'm here to help! What specific assistance do you need with your loan application?", now.AddDate(0, -1, 0).Add(time.Minute)},
		{domain.SenderUser, "I submitted my documents but haven't heard back", now.AddDate(0, 0, -5)},
		{domain.SenderBot, "Your application is currently under review. You should receive an update within 2-3 business days.", now.AddDate(0, 0, -5).Add(time.Minute)},
		{domain.SenderUser, "Thanks! When can I expect to hear back?", now.AddDate(0, 0, -1)},
		{domain.SenderBot, "You're welcome! Is there anything else I can help you with today?", now.AddDate(0, 0, -1).Add(time.Minute)},
	}
	for _, turn := range turns {
		st.AppendMessage(phone, domain.NewMessage(turn.sender, turn.text, turn.at))
	}
	logger.Info("seeded demo conversation", zap.String("phone", phone))
}
