// Package subscribers persists newsletter signups.
package subscribers

import (
	"context"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, email string) (*models.Subscriber, error)
}
