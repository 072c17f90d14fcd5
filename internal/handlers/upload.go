package handlers

import (
	"log"
	"net/http"
)

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadFile stores a message attachment in Cloudinary and returns its URL.
// Clients put the URL into the file field of a subsequent message.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if h.Uploads == nil {
		writeError(w, http.StatusInternalServerError, "File upload service not available")
		return
	}

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "oleg"
	}

	url, err := h.Uploads.Upload(r.Context(), fileHeader, folder)
	if err != nil {
		log.Printf("upload: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
