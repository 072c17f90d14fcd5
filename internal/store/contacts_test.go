package store

import (
	"errors"
	"testing"

	"github.com/oleg-messenger/backend/internal/models"
)

func registerTestUser(t *testing.T, s *Store, name, email string) *models.User {
	t.Helper()
	user, err := s.RegisterUser(name, email, "password1")
	if err != nil {
		t.Fatalf("RegisterUser(%s) error = %v", email, err)
	}
	return user
}

func TestAddContact(t *testing.T) {
	s := New()
	owner := registerTestUser(t, s, "Ivan", "ivan@example.com")
	peer := registerTestUser(t, s, "Anna", "anna@example.com")

	contact, err := s.AddContact(owner.ID, "anna@example.com")
	if err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}
	if contact.ContactID != peer.ID {
		t.Errorf("contact contactId = %q, want peer id %q", contact.ContactID, peer.ID)
	}
	if contact.Unread != 0 {
		t.Errorf("new contact unread = %d, want 0", contact.Unread)
	}
	if contact.Online {
		t.Error("new contact online = true, but peer never logged in")
	}
	if contact.IsOleg {
		t.Error("regular contact flagged as system contact")
	}

	// One-directional: the peer's list still only has the system contact.
	peerContacts := s.ContactsFor(peer.ID)
	if len(peerContacts) != 1 || !peerContacts[0].IsOleg {
		t.Errorf("peer contact list = %+v, want only the system contact", peerContacts)
	}
}

func TestAddContact_Errors(t *testing.T) {
	s := New()
	owner := registerTestUser(t, s, "Ivan", "ivan@example.com")
	registerTestUser(t, s, "Anna", "anna@example.com")

	if _, err := s.AddContact(owner.ID, "anna@example.com"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"unknown email", "ghost@example.com", ErrPeerNotFound},
		{"own email", "ivan@example.com", ErrPeerNotFound},
		{"already added", "anna@example.com", ErrDuplicateContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddContact(owner.ID, tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddContact(%s) error = %v, want %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestAddContact_OnlineSnapshot(t *testing.T) {
	s := New()
	owner := registerTestUser(t, s, "Ivan", "ivan@example.com")
	peer := registerTestUser(t, s, "Anna", "anna@example.com")

	s.MarkOnline(peer)

	contact, err := s.AddContact(owner.ID, "anna@example.com")
	if err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}
	if !contact.Online {
		t.Error("contact online = false, want snapshot of peer's presence")
	}
}

func TestContactsFor_InsertionOrder(t *testing.T) {
	s := New()
	owner := registerTestUser(t, s, "Ivan", "ivan@example.com")
	registerTestUser(t, s, "Anna", "anna@example.com")
	registerTestUser(t, s, "Boris", "boris@example.com")

	if _, err := s.AddContact(owner.ID, "anna@example.com"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}
	if _, err := s.AddContact(owner.ID, "boris@example.com"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}

	contacts := s.ContactsFor(owner.ID)
	if len(contacts) != 3 {
		t.Fatalf("ContactsFor() returned %d contacts, want 3", len(contacts))
	}
	wantEmails := []string{"support@oleg-messenger.com", "anna@example.com", "boris@example.com"}
	for i, want := range wantEmails {
		if contacts[i].Email != want {
			t.Errorf("contacts[%d].Email = %q, want %q", i, contacts[i].Email, want)
		}
	}
}
