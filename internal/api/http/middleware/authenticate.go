package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

// TokenParser resolves a platform user id from a bearer token.
type TokenParser interface {
	ParseAccessToken(tokenString string) (int64, error)
}

// Authenticate validates bearer tokens and injects the user id into the
// request context.
type Authenticate struct {
	tokens         TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes
// the request on with the user id in context. Requests without a valid
// token get 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			m.unauthorized(w, "missing authorization token")
			return
		}

		userID, err := m.tokens.ParseAccessToken(tokenString)
		if err != nil {
			m.logger.Info("rejected invalid token", "error", err)
			m.unauthorized(w, "invalid authorization token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.WithUserID(r.Context(), userID)))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
