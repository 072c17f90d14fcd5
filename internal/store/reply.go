package store

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/oleg-messenger/backend/internal/models"
)

// cannedReplies are the stock phrases the simulator picks from, uniformly at
// random.
var cannedReplies = []string{
	"Интересно!",
	"Понятно",
	"Согласен",
	"Расскажи подробнее",
	"Хорошо, договорились",
}

// defaultReplyDelay is uniform in [1s, 3s).
func defaultReplyDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
}

// scheduleReply arms a one-shot timer that delivers a canned reply into the
// chat. Fire-and-forget: there is no handle, no cancellation and no ordering
// guarantee between replies to rapid consecutive sends — each timer is
// randomized independently. A reply scheduled before process shutdown may
// never fire.
func (s *Store) scheduleReply(userID, chatID string) {
	time.AfterFunc(s.replyDelay(), func() {
		s.deliverReply(userID, chatID)
	})
}

// deliverReply appends an inbound message to the chat, updates the contact
// preview and bumps the unread counter. The counter is only ever incremented;
// nothing in the API marks messages read.
func (s *Store) deliverReply(userID, chatID string) {
	reply := cannedReplies[rand.Intn(len(cannedReplies))]
	msg := models.Message{
		ID:     uuid.NewString(),
		ChatID: chatID,
		Text:   reply,
		Type:   "text",
		Time:   time.Now(),
		Sender: models.SenderContact,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessageLocked(userID, chatID, msg)
	if c := s.findContactLocked(userID, chatID); c != nil {
		c.LastMessage = reply
		c.Time = msg.Time
		c.Unread++
	}
}
