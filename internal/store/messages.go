package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/oleg-messenger/backend/internal/models"
)

// Messages returns the chat log in insertion order. A user or chat partition
// that does not exist yet yields an empty slice, never an error.
func (s *Store) Messages(userID, chatID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.messages[userID][chatID]
	out := make([]models.Message, len(log))
	copy(out, log)
	return out
}

// appendMessageLocked appends to the user's chat partition, creating the
// partitions lazily. Callers must hold s.mu.
func (s *Store) appendMessageLocked(userID, chatID string, msg models.Message) {
	if s.messages[userID] == nil {
		s.messages[userID] = make(map[string][]models.Message)
	}
	s.messages[userID][chatID] = append(s.messages[userID][chatID], msg)
}

// SendMessage appends an outgoing message to the caller's chat partition and
// refreshes the contact's lastMessage preview. When the chat belongs to a
// regular (non-system) contact a simulated reply is scheduled. The message is
// stored even when no contact matches the chat id, matching the send
// contract.
func (s *Store) SendMessage(userID, chatID, text, msgType string, file *models.FileAttachment) models.Message {
	if msgType == "" {
		msgType = "text"
	}
	msg := models.Message{
		ID:     uuid.NewString(),
		ChatID: chatID,
		Text:   text,
		Type:   msgType,
		File:   file,
		Time:   time.Now(),
		Sender: models.SenderUser,
	}

	s.mu.Lock()
	s.appendMessageLocked(userID, chatID, msg)
	contact := s.findContactLocked(userID, chatID)
	if contact != nil {
		contact.LastMessage = messagePreview(text, file)
		contact.Time = msg.Time
	}
	simulate := contact != nil && !contact.IsOleg
	s.mu.Unlock()

	if simulate {
		s.scheduleReply(userID, chatID)
	}
	return msg
}

// messagePreview is what the contact list shows for the latest message.
func messagePreview(text string, file *models.FileAttachment) string {
	if text != "" {
		return text
	}
	if file != nil {
		return "Файл: " + file.Name
	}
	return "Вложение"
}

// DeleteMessage removes the message with the given id from the chat log.
// Unknown partitions or ids are acknowledged silently; deletion never fails.
func (s *Store) DeleteMessage(userID, chatID, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.messages[userID][chatID]
	if !ok {
		return
	}
	for i, m := range log {
		if m.ID == messageID {
			s.messages[userID][chatID] = append(log[:i:i], log[i+1:]...)
			return
		}
	}
}
