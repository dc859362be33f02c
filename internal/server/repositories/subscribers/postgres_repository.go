package subscribers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/dbx"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/repositories/pgerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create records a signup. A second signup for the same email surfaces as
// common.ErrAlreadyExists via the unique constraint, not by inspecting
// error text.
func (r *PostgresRepository) Create(ctx context.Context, email string) (*models.Subscriber, error) {

	query :=
		`INSERT INTO newsletter_subscribers (id, email)
		 VALUES ($1, $2)
		 RETURNING subscribed_at
		 `

	sub := &models.Subscriber{ID: uuid.NewString(), Email: email}

	err := r.db.QueryRowContext(ctx, query, sub.ID, sub.Email).Scan(&sub.SubscribedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sub, nil
}
