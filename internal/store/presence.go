package store

import (
	"time"

	"github.com/oleg-messenger/backend/internal/models"
)

// MarkOnline upserts the user's presence entry with the current time as
// lastSeen. Called on every login.
func (s *Store) MarkOnline(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.online[user.ID] = models.PresenceEntry{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		LastSeen: time.Now(),
	}
}

// OnlineExcept lists every tracked presence entry except the given user's
// own. Presence is add-only: there is no logout or expiry, so an entry lives
// until the process restarts.
func (s *Store) OnlineExcept(userID string) []models.PresenceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PresenceEntry, 0, len(s.online))
	for id, e := range s.online {
		if id != userID {
			out = append(out, e)
		}
	}
	return out
}
