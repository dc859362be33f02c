// Package services implements the application flows on top of the
// repositories, the authentication core and the chatbot client.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chineye-ai/chatserver/internal/common"
	"github.com/chineye-ai/chatserver/internal/dbx"
	"github.com/chineye-ai/chatserver/internal/server/auth"
	"github.com/chineye-ai/chatserver/internal/server/config"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken string
	Username    string
}

type UserService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	jwtSecret      []byte
	accessTokenTTL time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		jwtSecret:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates an account. The duplicate check and insert run inside one
// transaction; a taken username or email reports common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	var user *models.User

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.Exists(ctx, username, email)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrAlreadyExists
		}

		user, err = repo.Create(ctx, &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
		})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrInternal
	}

	return user, nil
}

// Login checks the credentials and issues an access token. Unknown email and
// wrong password produce the same common.ErrUnauthenticated.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, common.ErrInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrUnauthenticated
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{AccessToken: token, Username: user.Username}, nil
}
