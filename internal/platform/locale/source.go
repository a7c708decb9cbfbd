package locale

import "time"

// Source answers locale questions for the localization policy layer.
// Implementations own the locale data; callers only combine the answers.
type Source interface {
	// IsSupported reports whether the identifier (e.g. "en_US") has locale
	// data behind it.
	IsSupported(id string) bool
	// FirstDayOfWeek returns the ISO weekday number (1=Monday..7=Sunday) of
	// the first day of the week containing now under the locale's convention.
	FirstDayOfWeek(id string, now time.Time) int
	// FormatPercent renders value as a percentage under the locale, e.g.
	// FormatPercent("tr_TR", 25) == "%25".
	FormatPercent(id string, value float64) string
}
