// Package users provides persistence for registered accounts.
package users

import (
	"context"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

// Repository is the user-store contract consumed by the services and the
// identity resolver.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}
