package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/autmail/maillist-server/internal/api/http/handler"
	"github.com/autmail/maillist-server/internal/api/http/middleware"
)

// New assembles the HTTP routing table with the shared middleware chain.
// Routes that act on behalf of a platform user sit behind bearer auth;
// list creation and reads are open to the platform adapter directly.
func New(
	h *handler.Handler,
	auth *middleware.Authenticate,
	logging *middleware.Logging,
	corsAllowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Handle)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/lists", h.CreateList)
		r.Get("/lists/{listID}", h.GetList)

		r.Group(func(r chi.Router) {
			r.Use(auth.Handle)
			r.Post("/users/me/email", h.RegisterEmail)
			r.Get("/users/me/email", h.LookupEmail)
			r.Post("/lists/{listID}/entries", h.AppendToList)
		})
	})

	return r
}
