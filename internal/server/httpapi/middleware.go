package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

// authedHandle is a route handler that only runs for resolved identities.
type authedHandle func(w http.ResponseWriter, r *http.Request, user *models.User)

// requireAuth resolves the Authorization header before the handler runs.
// Any failure produces the one generic 401 response.
func (s *Server) requireAuth(next authedHandle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		user, err := s.resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeUnauthenticated(w)
			return
		}
		next(w, r, user)
	}
}

// cors sets the response headers the browser frontend needs, on every
// response including preflights.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.allowOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		next.ServeHTTP(w, r)
	})
}
