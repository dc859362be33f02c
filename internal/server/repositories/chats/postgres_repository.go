package chats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chineye-ai/chatserver/internal/dbx"
	"github.com/chineye-ai/chatserver/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {

	query :=
		`INSERT INTO chat_history (id, user_id, message, response)
		 VALUES ($1, $2, $3, $4)
		 RETURNING timestamp
		 `

	msg.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		msg.ID, msg.UserID, msg.Message, msg.Response).Scan(&msg.Timestamp)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

// ListByUser returns up to limit turns for userID, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	query :=
		`SELECT id, user_id, message, response, timestamp FROM chat_history
		 WHERE user_id = $1
		 ORDER BY timestamp ASC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var history []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return history, nil
}
