package localization

import (
	"encoding/json"
	"net/http"
)

// PreviewResult is the JSON payload behind the settings form's live
// preview: the conventions that would apply if the user saved the selected
// language and country.
type PreviewResult struct {
	Locale         string `json:"locale"`
	WeekStart      int    `json:"week_start"`
	WeekStartName  string `json:"week_start_name"`
	PercentFirst   bool   `json:"percent_first"`
	PercentExample string `json:"percent_example"`
}

// Preview computes derived conventions for a language/country pair without
// touching stored settings.
func (s *Service) Preview(language, countryCode string) PreviewResult {
	localeID := ResolveLocale(s.locales, language, countryCode)
	weekStart := ResolveWeekStart(s.locales, localeID, s.now())
	return PreviewResult{
		Locale:         localeID,
		WeekStart:      int(weekStart),
		WeekStartName:  weekStart.String(),
		PercentFirst:   IsPercentFirst(s.locales, language, countryCode),
		PercentExample: s.locales.FormatPercent(language+"_"+countryCode, percentProbe),
	}
}

// Preview handles GET /settings/localization/preview. The form fires one
// request per language/country change; identical concurrent probes collapse
// through singleflight.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	country := r.URL.Query().Get("country")
	if language == "" {
		http.Error(w, "language is required", http.StatusBadRequest)
		return
	}

	key := language + "_" + country
	result, err, _ := h.previews.Do(key, func() (any, error) {
		return h.service.Preview(language, country), nil
	})
	if err != nil {
		h.logger.Error("preview failed", "error", err, "locale", key)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "max-age=300")
	_ = json.NewEncoder(w).Encode(result)
}
