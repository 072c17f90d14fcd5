package models

import "time"

// User is a registered account. The password hash never leaves the process
// and user records are never mutated after registration.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Argon2id hash, never serialized
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the public view of a user returned by auth endpoints.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary strips the user down to the fields clients may see.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Contact is one row in a user's contact list. The contact id doubles as the
// chat id for the message log. Contacts are one-directional: adding someone
// does not create the reciprocal row on their side.
type Contact struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ContactID   string    `json:"contactId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LastMessage string    `json:"lastMessage"`
	Time        time.Time `json:"time"`
	Unread      int       `json:"unread"`
	Online      bool      `json:"online"`
	IsOleg      bool      `json:"isOleg"`
}

// Message sender values.
const (
	SenderUser    = "user"
	SenderContact = "contact"
)

// Message lives in the owning user's partition only; the two sides of a
// conversation never share a log.
type Message struct {
	ID     string          `json:"id"`
	ChatID string          `json:"chatId"`
	Text   string          `json:"text,omitempty"`
	Type   string          `json:"type"`
	File   *FileAttachment `json:"file,omitempty"`
	Time   time.Time       `json:"time"`
	Sender string          `json:"sender"`
}

// FileAttachment describes a file sent in a message. URL points at the
// uploaded asset when the upload service is configured.
type FileAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// PresenceEntry marks a user as logged in. Entries are never removed until
// the process restarts.
type PresenceEntry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	LastSeen time.Time `json:"lastSeen"`
}
