package localization

import (
	"strconv"
	"strings"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/platform/locale"
)

// ResolveLocale composes the compound identifier language_COUNTRY and keeps
// it when the source has data for it. Languages without a country-specific
// variant fall back to the bare language identifier, so the result is always
// resolvable.
func ResolveLocale(src locale.Source, language, countryCode string) string {
	full := language + "_" + countryCode
	if src.IsSupported(full) {
		return full
	}
	return language
}

// ResolveWeekStart asks the calendar source for the first day of the week
// containing now under the locale's convention and maps it onto the enum.
// Values the enum does not define collapse to the system default, so the
// result is always well-defined.
func ResolveWeekStart(src locale.Source, localeID string, now time.Time) WeekStart {
	return WeekStartFromISO(src.FirstDayOfWeek(localeID, now))
}

// percentProbe is the value rendered to detect percent-sign placement.
const percentProbe = 25

// IsPercentFirst reports whether the locale writes the percent sign before
// the number. Rather than maintaining a table of sign-first locales, it
// renders a known value through the formatting source and inspects where the
// sign landed, so every locale the formatter knows is handled.
func IsPercentFirst(src locale.Source, language, countryCode string) bool {
	formatted := src.FormatPercent(language+"_"+countryCode, percentProbe)

	digitPos := strings.Index(formatted, strconv.Itoa(percentProbe))
	if digitPos < 0 {
		return false
	}
	signPos := strings.Index(formatted, "%")
	if signPos < 0 {
		return false
	}
	return signPos < digitPos
}

// FiscalYearEndDate returns the end of the fiscal period now falls in: the
// configured month/day this calendar year, or next year's occurrence once
// this year's has passed. A Feb 29 configuration is clamped to Feb 28 in
// non-leap years rather than spilling into March.
func (l Localization) FiscalYearEndDate(now time.Time) time.Time {
	end := fiscalDate(now.Year(), l.FiscalYearEndMonth, l.FiscalYearEndDay, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if today.After(end) {
		return fiscalDate(now.Year()+1, l.FiscalYearEndMonth, l.FiscalYearEndDay, now.Location())
	}
	return end
}

// FiscalYearStartDate is the day after the prior fiscal year's end, derived
// from FiscalYearEndDate so the pair always bounds exactly one 12-month
// period with no gap or overlap.
func (l Localization) FiscalYearStartDate(now time.Time) time.Time {
	end := l.FiscalYearEndDate(now)
	start := end.AddDate(-1, 0, 0)
	// AddDate normalizes Feb 29 minus a year into March; pull it back to the
	// end of February before stepping forward.
	if start.Day() != end.Day() {
		start = start.AddDate(0, 0, -start.Day())
	}
	return start.AddDate(0, 0, 1)
}

// DateTimeFormat is the combined display layout: date format, one space,
// time format.
func (l Localization) DateTimeFormat() string {
	return string(l.DateFormat) + " " + string(l.TimeFormat)
}

// fiscalDate builds year/month/day, clamping day to the month's length so an
// out-of-range day never normalizes into the following month.
func fiscalDate(year, month, day int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

func daysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
