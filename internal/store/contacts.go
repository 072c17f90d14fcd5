package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/oleg-messenger/backend/internal/models"
)

// ContactsFor returns the user's contacts in insertion order.
func (s *Store) ContactsFor(userID string) []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, 0)
	for _, c := range s.contacts {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out
}

// AddContact adds the user with the given email to the owner's contact list.
// The lookup excludes the owner, so adding yourself fails with
// ErrPeerNotFound. The online flag is a snapshot of the peer's presence at
// creation time; it is not updated afterward.
func (s *Store) AddContact(ownerID, email string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var peer *models.User
	for _, u := range s.users {
		if u.Email == email && u.ID != ownerID {
			peer = u
			break
		}
	}
	if peer == nil {
		return nil, ErrPeerNotFound
	}

	for _, c := range s.contacts {
		if c.UserID == ownerID && c.Email == email {
			return nil, ErrDuplicateContact
		}
	}

	_, online := s.online[peer.ID]
	contact := &models.Contact{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		ContactID:   peer.ID,
		Name:        peer.Name,
		Email:       peer.Email,
		LastMessage: newContactPreview,
		Time:        time.Now(),
		Unread:      0,
		Online:      online,
		IsOleg:      false,
	}
	s.contacts = append(s.contacts, contact)

	out := *contact
	return &out, nil
}

// findContactLocked returns the owner's contact whose id matches the chat id,
// or nil. Callers must hold s.mu.
func (s *Store) findContactLocked(ownerID, chatID string) *models.Contact {
	for _, c := range s.contacts {
		if c.ID == chatID && c.UserID == ownerID {
			return c
		}
	}
	return nil
}
