package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/oleg-messenger/backend/internal/auth"
	"github.com/oleg-messenger/backend/internal/handlers"
	"github.com/oleg-messenger/backend/internal/middleware"
)

// SetupRoutes mounts the API surface. Registration and login are public;
// every other route requires a valid bearer token.
func SetupRoutes(r *chi.Mux, h *handlers.Handler, tokens *auth.TokenService) {
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens))

		r.Get("/api/contacts", h.GetContacts)
		r.Post("/api/contacts", h.AddContact)
		r.Get("/api/messages/{chatID}", h.GetMessages)
		r.Post("/api/messages", h.SendMessage)
		r.Delete("/api/messages/{chatID}/{messageID}", h.DeleteMessage)
		r.Get("/api/online-users", h.GetOnlineUsers)
		r.Post("/api/upload", h.UploadFile)
	})

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)
}
