package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/repositories/repomanager"
)

type NewsletterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNewsletterService(db *sql.DB, m repomanager.RepositoryManager) *NewsletterService {
	return &NewsletterService{db: db, repomanager: m}
}

// Subscribe records a newsletter signup. A repeated email reports
// common.ErrAlreadyExists (surfaced by the store's unique constraint).
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {

	repo := s.repomanager.Subscribers(s.db)

	sub, err := repo.Create(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrInternal
	}

	return sub, nil
}
