package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/oleg-messenger/backend/internal/models"
	"github.com/oleg-messenger/backend/pkg/utils"
)

// RegisterUser creates a new account. The email must not belong to an
// existing user (exact, case-sensitive match). Registration also creates the
// Oleg system contact and its welcome message so no user ever exists without
// them.
func (s *Store) RegisterUser(name, email, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hash,
		CreatedAt: now,
	}
	s.users = append(s.users, user)

	oleg := &models.Contact{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		ContactID:   SystemContactID,
		Name:        systemContactName,
		Email:       systemContactEmail,
		LastMessage: systemContactPreview,
		Time:        now,
		Unread:      1,
		Online:      true,
		IsOleg:      true,
	}
	s.contacts = append(s.contacts, oleg)

	s.appendMessageLocked(user.ID, oleg.ID, models.Message{
		ID:     uuid.NewString(),
		ChatID: oleg.ID,
		Text:   welcomeMessageText,
		Type:   "text",
		Time:   now,
		Sender: models.SenderContact,
	})

	return user, nil
}

// VerifyUser checks a login attempt. Unknown email and wrong password both
// return ErrInvalidCredentials.
func (s *Store) VerifyUser(email, password string) (*models.User, error) {
	s.mu.Lock()
	var user *models.User
	for _, u := range s.users {
		if u.Email == email {
			user = u
			break
		}
	}
	s.mu.Unlock()

	if user == nil {
		return nil, ErrInvalidCredentials
	}
	// User records are append-only and never mutated, so reading fields
	// outside the lock is safe. Hashing is slow; keep it out of the lock.
	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
