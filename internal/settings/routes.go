// Package settings groups the company-scoped business settings screens:
// categories and localization.
package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian-erp/internal/settings/categories"
	"github.com/meridian-erp/meridian-erp/internal/settings/localization"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// Handler aggregates the settings sub-handlers under one mount point.
type Handler struct {
	Categories   *categories.Handler
	Localization *localization.Handler
}

// MountRoutes registers all settings routes behind the login gate.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		h.Categories.MountRoutes(r)
		h.Localization.MountRoutes(r)
	})
}

// requireUser redirects unauthenticated requests to the login page. Company
// scoping happens per-handler via shared.IdentityFromSession.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
