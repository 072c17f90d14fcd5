package handlers

import (
	"net/http"

	"github.com/oleg-messenger/backend/internal/middleware"
)

// GetOnlineUsers lists currently logged-in users, excluding the caller.
func (h *Handler) GetOnlineUsers(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	writeJSON(w, http.StatusOK, h.Store.OnlineExcept(claims.UserID))
}
