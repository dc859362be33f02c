// Package httpapi exposes the application over HTTP/JSON: signup, login,
// chat relay, chat history, newsletter signup and health.
package httpapi

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/chineye-ai/chatserver/internal/logging"
	"github.com/chineye-ai/chatserver/internal/server/models"
	"github.com/chineye-ai/chatserver/internal/server/services"
)

// serviceName is reported by the health endpoint.
const serviceName = "chatserver"

// UserService covers account registration and credential login.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// ChatService covers the model relay and per-user history.
type ChatService interface {
	Send(ctx context.Context, userID, message string) (string, error)
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
}

// NewsletterService records signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*models.Subscriber, error)
}

// IdentityResolver authenticates a bearer Authorization header.
type IdentityResolver interface {
	Resolve(ctx context.Context, authorization string) (*models.User, error)
}

type Server struct {
	logger     logging.Logger
	users      UserService
	chat       ChatService
	newsletter NewsletterService
	resolver   IdentityResolver

	allowOrigin string
}

func NewServer(logger logging.Logger, users UserService, chat ChatService, newsletter NewsletterService, resolver IdentityResolver, allowOrigin string) *Server {
	return &Server{
		logger:      logger,
		users:       users,
		chat:        chat,
		newsletter:  newsletter,
		resolver:    resolver,
		allowOrigin: allowOrigin,
	}
}

// Handler builds the routed handler with CORS applied to every response,
// including preflights.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.GET("/health", s.handleHealth)
	router.POST("/api/signup", s.handleSignup)
	router.POST("/api/login", s.handleLogin)
	router.POST("/api/send-message", s.requireAuth(s.handleSendMessage))
	router.GET("/api/history", s.requireAuth(s.handleHistory))
	router.POST("/api/logout", s.requireAuth(s.handleLogout))
	router.POST("/api/newsletter", s.handleNewsletter)

	router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return s.cors(router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}
