package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/chineye-ai/chatserver/internal/common"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

type newsletterResponse struct {
	Message      string `json:"message"`
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req newsletterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !isValidEmail(email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	sub, err := s.newsletter.Subscribe(r.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "Email already subscribed")
			return
		}
		s.logger.Error(r.Context(), "newsletter signup failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, newsletterResponse{
		Message:      "Successfully subscribed to newsletter",
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt.UTC().Format(time.RFC3339),
	})
}
