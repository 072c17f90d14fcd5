package store

import (
	"errors"
	"testing"

	"github.com/oleg-messenger/backend/internal/models"
)

func TestRegisterUser(t *testing.T) {
	s := New()

	user, err := s.RegisterUser("Ivan", "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if user.ID == "" {
		t.Error("RegisterUser() returned empty id")
	}
	if user.Password == "secret123" {
		t.Error("RegisterUser() stored the plaintext password")
	}
	if user.CreatedAt.IsZero() {
		t.Error("RegisterUser() did not set createdAt")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	s := New()

	first, err := s.RegisterUser("Ivan", "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	_, err = s.RegisterUser("Other Ivan", "ivan@example.com", "different")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("RegisterUser() error = %v, want ErrDuplicateEmail", err)
	}

	// First user must be unaffected.
	got, err := s.VerifyUser("ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("VerifyUser() error = %v", err)
	}
	if got.ID != first.ID || got.Name != "Ivan" {
		t.Errorf("VerifyUser() = %+v, want first user's record", got)
	}
}

func TestRegisterUser_CreatesSystemContactAndWelcome(t *testing.T) {
	s := New()

	user, err := s.RegisterUser("Ivan", "ivan@example.com", "secret123")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	contacts := s.ContactsFor(user.ID)
	if len(contacts) != 1 {
		t.Fatalf("ContactsFor() returned %d contacts, want 1", len(contacts))
	}
	oleg := contacts[0]
	if !oleg.IsOleg {
		t.Error("system contact is not flagged isOleg")
	}
	if oleg.ContactID != SystemContactID {
		t.Errorf("system contact contactId = %q, want %q", oleg.ContactID, SystemContactID)
	}
	if oleg.Name != "Oleg" {
		t.Errorf("system contact name = %q, want Oleg", oleg.Name)
	}
	if oleg.Unread != 1 || !oleg.Online {
		t.Errorf("system contact unread/online = %d/%v, want 1/true", oleg.Unread, oleg.Online)
	}

	msgs := s.Messages(user.ID, oleg.ID)
	if len(msgs) != 1 {
		t.Fatalf("Messages() returned %d messages, want 1 welcome message", len(msgs))
	}
	if msgs[0].Sender != models.SenderContact {
		t.Errorf("welcome message sender = %q, want %q", msgs[0].Sender, models.SenderContact)
	}
	if msgs[0].Text == "" {
		t.Error("welcome message has empty text")
	}
}

func TestVerifyUser(t *testing.T) {
	s := New()
	if _, err := s.RegisterUser("Ivan", "ivan@example.com", "secret123"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"correct credentials", "ivan@example.com", "secret123", nil},
		{"wrong password", "ivan@example.com", "wrong", ErrInvalidCredentials},
		{"unknown email", "nobody@example.com", "secret123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.VerifyUser(tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyUser() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyUser_SameErrorForBothFailures(t *testing.T) {
	s := New()
	if _, err := s.RegisterUser("Ivan", "ivan@example.com", "secret123"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	_, errWrongPassword := s.VerifyUser("ivan@example.com", "bad")
	_, errUnknownEmail := s.VerifyUser("ghost@example.com", "bad")

	if errWrongPassword == nil || errUnknownEmail == nil {
		t.Fatal("expected both login attempts to fail")
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}
