package localization

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/meridian-erp/meridian-erp/internal/shared"
	"github.com/meridian-erp/meridian-erp/internal/view"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
	sessions  *shared.SessionManager
	previews  singleflight.Group
}

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager, sessions *shared.SessionManager) *Handler {
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf, sessions: sessions}
}

// MountRoutes registers localization settings routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/localization", h.EditForm)
	r.Post("/localization", h.Update)
	r.Get("/localization/preview", h.Preview)
}

// timezones offered in the settings form. Companies needing another zone can
// be provisioned through support; the list covers the deployed regions.
var timezones = []string{
	"UTC",
	"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles",
	"America/Sao_Paulo", "America/Mexico_City", "America/Toronto",
	"Europe/London", "Europe/Paris", "Europe/Berlin", "Europe/Madrid",
	"Europe/Amsterdam", "Europe/Istanbul", "Europe/Moscow",
	"Asia/Dubai", "Asia/Kolkata", "Asia/Bangkok", "Asia/Jakarta",
	"Asia/Singapore", "Asia/Hong_Kong", "Asia/Shanghai", "Asia/Tokyo", "Asia/Seoul",
	"Australia/Sydney", "Pacific/Auckland", "Africa/Johannesburg",
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	loc, err := h.service.Get(r.Context(), identity)
	if err != nil {
		h.logger.Error("load localization failed", "error", err, "company_id", identity.CompanyID)
		http.Error(w, "Failed to load localization settings", http.StatusInternalServerError)
		return
	}

	h.render(w, r, map[string]any{
		"Errors":        map[string]string{},
		"Localization":  loc,
		"Languages":     h.service.Languages(),
		"Timezones":     timezones,
		"DateFormats":   DateFormats,
		"TimeFormats":   TimeFormats,
		"NumberFormats": NumberFormats,
		"WeekStarts":    WeekStarts,
	}, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := shared.IdentityFromSession(shared.SessionFromContext(r.Context()))
	if err != nil {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	month, _ := strconv.Atoi(r.PostFormValue("fiscal_year_end_month"))
	day, _ := strconv.Atoi(r.PostFormValue("fiscal_year_end_day"))
	weekStart, _ := strconv.Atoi(r.PostFormValue("week_start"))

	form := UpdateForm{
		Language:           r.PostFormValue("language"),
		CountryCode:        r.PostFormValue("country"),
		Timezone:           r.PostFormValue("timezone"),
		DateFormat:         DateFormat(r.PostFormValue("date_format")),
		TimeFormat:         TimeFormat(r.PostFormValue("time_format")),
		NumberFormat:       NumberFormat(r.PostFormValue("number_format")),
		FiscalYearEndMonth: month,
		FiscalYearEndDay:   day,
		WeekStart:          WeekStart(weekStart),
	}

	saved, err := h.service.Update(r.Context(), identity, form)
	if err != nil {
		h.logger.Error("update localization failed", "error", err, "company_id", identity.CompanyID)
		errs := map[string]string{"general": shared.UserSafeMessage(err)}
		if fe, ok := shared.AsFieldError(err); ok {
			errs = map[string]string{fe.Field: fe.Error()}
		}
		h.render(w, r, map[string]any{
			"Errors":        errs,
			"Localization":  previewModel(form, identity.CompanyID),
			"Languages":     h.service.Languages(),
			"Timezones":     timezones,
			"DateFormats":   DateFormats,
			"TimeFormats":   TimeFormats,
			"NumberFormats": NumberFormats,
			"WeekStarts":    WeekStarts,
		}, http.StatusBadRequest)
		return
	}

	h.logger.Info("localization updated",
		"company_id", identity.CompanyID,
		"language", saved.Language,
		"week_start", saved.WeekStart.String(),
	)
	h.redirectWithFlash(w, r, "/settings/localization", "success", "Localization settings saved")
}

// previewModel echoes rejected input back into the form.
func previewModel(form UpdateForm, companyID int64) Localization {
	loc := Default(companyID)
	loc.Language = form.Language
	loc.Timezone = form.Timezone
	loc.DateFormat = form.DateFormat
	loc.TimeFormat = form.TimeFormat
	loc.NumberFormat = form.NumberFormat
	loc.FiscalYearEndMonth = form.FiscalYearEndMonth
	loc.FiscalYearEndDay = form.FiscalYearEndDay
	loc.WeekStart = form.WeekStart
	return loc
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data map[string]any, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	viewData := view.TemplateData{
		Title:       "Localization",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	w.WriteHeader(status)
	if err := h.templates.Render(w, "pages/localization_form.html", viewData); err != nil {
		h.logger.Error("render template", "error", err, "template", "pages/localization_form.html")
	}
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, location, kind, message string) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: message})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
