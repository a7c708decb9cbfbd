package categories

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian-erp/internal/shared"
	"github.com/meridian-erp/meridian-erp/internal/view"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	sessions  *shared.SessionManager
}

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager, sessions *shared.SessionManager) *Handler {
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf, sessions: sessions}
}

// MountRoutes registers category settings routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/categories", h.List)
	r.Get("/categories/new", h.Form)
	r.Post("/categories", h.Create)
	r.Get("/categories/{id}/edit", h.EditForm)
	r.Post("/categories/{id}/edit", h.Update)
	r.Post("/categories/{id}/delete", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	cats, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.logger.Error("list categories failed", "error", err, "company_id", identity.CompanyID)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "pages/categories_list.html", map[string]any{
		"Categories": cats,
	}, http.StatusOK)
}

// Form shows the creation form. The page the user came from is captured into
// a hidden return_to field so a successful creation sends them back there.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/category_form.html", map[string]any{
		"Errors":   map[string]string{},
		"Category": nil,
		"ReturnTo": localPath(r.Referer()),
	}, http.StatusOK)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	input := CreateInput{
		Type:    r.PostFormValue("type"),
		Name:    r.PostFormValue("name"),
		Enabled: r.PostFormValue("enabled"),
	}
	returnTo := localPath(r.PostFormValue("return_to"))

	created, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		h.logger.Error("create category failed", "error", err, "company_id", identity.CompanyID)
		errs := map[string]string{"general": shared.UserSafeMessage(err)}
		if fe, ok := shared.AsFieldError(err); ok {
			errs = map[string]string{fe.Field: fe.Error()}
		}
		h.render(w, r, "pages/category_form.html", map[string]any{
			"Errors":   errs,
			"Category": Category{Type: input.Type, Name: input.Name, Enabled: CoerceBool(input.Enabled)},
			"ReturnTo": returnTo,
		}, http.StatusBadRequest)
		return
	}

	h.logger.Info("category created", "company_id", identity.CompanyID, "type", created.Type, "id", created.ID)
	h.redirectWithFlash(w, r, returnTo, "success", "Category created successfully")
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	category, err := h.service.Get(r.Context(), identity, id)
	if err != nil {
		h.logger.Error("get category failed", "error", err, "id", id)
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	h.render(w, r, "pages/category_form.html", map[string]any{
		"Errors":   map[string]string{},
		"Category": category,
		"ReturnTo": localPath(r.Referer()),
	}, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	input := UpdateInput{
		Type:    r.PostFormValue("type"),
		Name:    r.PostFormValue("name"),
		Enabled: r.PostFormValue("enabled"),
	}
	returnTo := localPath(r.PostFormValue("return_to"))

	if err := h.service.Update(r.Context(), identity, id, input); err != nil {
		h.logger.Error("update category failed", "error", err, "id", id)
		errs := map[string]string{"general": shared.UserSafeMessage(err)}
		if fe, ok := shared.AsFieldError(err); ok {
			errs = map[string]string{fe.Field: fe.Error()}
		}
		h.render(w, r, "pages/category_form.html", map[string]any{
			"Errors":   errs,
			"Category": Category{ID: id, Type: input.Type, Name: input.Name, Enabled: CoerceBool(input.Enabled)},
			"ReturnTo": returnTo,
		}, http.StatusBadRequest)
		return
	}

	h.redirectWithFlash(w, r, returnTo, "success", "Category updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		h.logger.Error("delete category failed", "error", err, "id", id)
		h.redirectWithFlash(w, r, "/settings/categories", "error", shared.UserSafeMessage(err))
		return
	}

	h.redirectWithFlash(w, r, "/settings/categories", "success", "Category deleted successfully")
}

// localPath reduces a captured URL to a same-site path, defaulting to the
// category list. Anything absolute or external is discarded so the redirect
// can never leave the application.
func localPath(raw string) string {
	const fallback = "/settings/categories"
	if raw == "" {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fallback
	}
	path := u.EscapedPath()
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template string, data map[string]any, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	viewData := view.TemplateData{
		Title:       "Categories",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	w.WriteHeader(status)
	if err := h.templates.Render(w, template, viewData); err != nil {
		h.logger.Error("render template", "error", err, "template", template)
	}
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, location, kind, message string) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
