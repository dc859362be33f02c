// Package chats persists chat turns (user message + model response).
package chats

import (
	"context"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)
}
