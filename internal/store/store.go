package store

import (
	"sync"
	"time"

	"github.com/oleg-messenger/backend/internal/models"
)

// System contact created for every new user at registration.
const (
	SystemContactID    = "oleg-system"
	systemContactName  = "Oleg"
	systemContactEmail = "support@oleg-messenger.com"
)

const (
	systemContactPreview = "Спасибо что выбрали нас! Oleg - очень безопасный мессенджер"
	welcomeMessageText   = "Спасибо что выбрали нас! Oleg - очень безопасный мессенджер. Здесь ваши сообщения защищены современными методами шифрования."
	newContactPreview    = "Начните общение"
)

// Store holds all backend state in process memory: users, contacts, per-user
// message partitions and presence. Nothing is persisted and everything is
// lost on restart. Users, messages and presence grow without bound — there is
// no eviction, logout or mark-read in this design.
//
// A single mutex guards the maps and slices: net/http serves each request on
// its own goroutine and simulated replies fire from timer goroutines.
type Store struct {
	mu       sync.Mutex
	users    []*models.User
	contacts []*models.Contact
	messages map[string]map[string][]models.Message // userID -> chatID -> log
	online   map[string]models.PresenceEntry

	replyDelay func() time.Duration
}

// New returns an empty store.
func New() *Store {
	return &Store{
		messages:   make(map[string]map[string][]models.Message),
		online:     make(map[string]models.PresenceEntry),
		replyDelay: defaultReplyDelay,
	}
}
