package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oleg-messenger/backend/internal/auth"
	"github.com/oleg-messenger/backend/internal/services"
	"github.com/oleg-messenger/backend/internal/store"
)

// Handler bundles the HTTP handlers with their dependencies. Everything is
// injected so tests can run against an isolated store.
type Handler struct {
	Store   *store.Store
	Tokens  *auth.TokenService
	Uploads *services.CloudinaryService // nil when Cloudinary is not configured
}

func New(st *store.Store, tokens *auth.TokenService, uploads *services.CloudinaryService) *Handler {
	return &Handler{Store: st, Tokens: tokens, Uploads: uploads}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the single {"error": message} failure shape every
// endpoint uses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// NotFound renders the JSON 404 for unmatched routes and methods.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}
