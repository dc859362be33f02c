package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}

type historyEntry struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type historyResponse struct {
	History []historyEntry `json:"history"`
}

type logoutResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	reply, err := s.chat.Send(r.Context(), user.ID, req.Message)
	if err != nil {
		s.logger.Error(r.Context(), "send message failed", "error", err.Error(), "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		Message:  req.Message,
		Response: reply,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, user *models.User) {
	history, err := s.chat.History(r.Context(), user.ID)
	if err != nil {
		s.logger.Error(r.Context(), "loading history failed", "error", err.Error(), "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	entries := make([]historyEntry, 0, len(history))
	for _, m := range history {
		entries = append(entries, historyEntry{
			Message:   m.Message,
			Response:  m.Response,
			Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, historyResponse{History: entries})
}

// handleLogout exists so the frontend has a call to make while clearing its
// stored token; tokens are stateless and nothing is invalidated server-side.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, user *models.User) {
	writeJSON(w, http.StatusOK, logoutResponse{
		Message:  "Logged out successfully",
		Username: user.Username,
	})
}
