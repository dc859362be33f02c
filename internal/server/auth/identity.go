package auth

import (
	"context"
	"strings"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/server/models"
)

const bearerPrefix = "Bearer "

// UserGetter is the single read the resolver needs from the user store.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver turns an Authorization header value into the user it belongs to.
type Resolver struct {
	users  UserGetter
	secret []byte
}

func NewResolver(users UserGetter, secret []byte) *Resolver {
	return &Resolver{users: users, secret: secret}
}

// Resolve validates a "Bearer <token>" header value and looks up the token's
// subject in the user store. Every failure (missing or malformed header,
// invalid token, missing subject, unknown user, store unreachable) returns
// common.ErrUnauthenticated; callers cannot tell which stage rejected.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (*models.User, error) {
	token, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok || token == "" {
		return nil, common.ErrUnauthenticated
	}

	userID, err := VerifyToken(token, r.secret)
	if err != nil {
		return nil, common.ErrUnauthenticated
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		// A store failure on this read-only path is reported the same as
		// not-found; signup/login surface store errors separately.
		return nil, common.ErrUnauthenticated
	}

	return user, nil
}
