package services

import (
	"context"
	"database/sql"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/logging"
	"github.com/chineye-ai/chatserver/internal/server/config"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/repositories/repomanager"
)

// fallbackReply is returned to the user when the model cannot be reached or
// produces nothing usable; the request still succeeds.
const fallbackReply = "Sorry, there was a problem connecting to the AI service. Please try again later."

// Replier produces a model reply for one user message.
type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

type ChatService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	bot          Replier
	logger       logging.Logger
	historyLimit int
}

func NewChatService(db *sql.DB, m repomanager.RepositoryManager, bot Replier, logger logging.Logger, cfg *config.Config) *ChatService {
	return &ChatService{
		db:           db,
		repomanager:  m,
		bot:          bot,
		logger:       logger,
		historyLimit: cfg.HistoryLimit,
	}
}

// Send relays message to the model and persists the exchange. A model
// failure degrades to the canned fallback reply; a persistence failure is
// logged but does not fail the request, the user already has their answer.
func (s *ChatService) Send(ctx context.Context, userID, message string) (string, error) {

	reply, err := s.bot.Reply(ctx, message)
	if err != nil {
		s.logger.Error(ctx, "model call failed", "error", err.Error())
		reply = fallbackReply
	}

	repo := s.repomanager.Chats(s.db)
	if _, err := repo.Create(ctx, &models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: reply,
	}); err != nil {
		s.logger.Error(ctx, "saving chat message failed", "error", err.Error(), "user_id", userID)
	}

	return reply, nil
}

// History returns the user's chat turns, oldest first, capped at the
// configured limit.
func (s *ChatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {

	repo := s.repomanager.Chats(s.db)

	history, err := repo.ListByUser(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, common.ErrInternal
	}

	return history, nil
}
