package localization

import (
	"strconv"
	"strings"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// validate rejects malformed settings before they reach storage. Fiscal
// year end must be a real calendar date in at least one year: Feb 29 is
// accepted (it exists in leap years and is clamped at computation time),
// Feb 30 is not.
func (s *Service) validate(form UpdateForm) error {
	if strings.TrimSpace(form.Language) == "" {
		return &shared.FieldError{Field: "language", Message: "language is required"}
	}
	if form.Timezone == "" {
		return &shared.FieldError{Field: "timezone", Message: "timezone is required"}
	}
	if _, err := time.LoadLocation(form.Timezone); err != nil {
		return &shared.FieldError{Field: "timezone", Value: form.Timezone, Message: "unknown timezone " + strconv.Quote(form.Timezone)}
	}
	if !form.DateFormat.Valid() {
		return &shared.FieldError{Field: "date_format", Value: string(form.DateFormat), Message: "unsupported date format"}
	}
	if !form.TimeFormat.Valid() {
		return &shared.FieldError{Field: "time_format", Value: string(form.TimeFormat), Message: "unsupported time format"}
	}
	if !form.NumberFormat.Valid() {
		return &shared.FieldError{Field: "number_format", Value: string(form.NumberFormat), Message: "unsupported number format"}
	}
	if form.WeekStart != 0 && !form.WeekStart.Valid() {
		return &shared.FieldError{Field: "week_start", Value: strconv.Itoa(int(form.WeekStart)), Message: "week start must be an ISO weekday"}
	}
	if form.FiscalYearEndMonth < 1 || form.FiscalYearEndMonth > 12 {
		return &shared.FieldError{Field: "fiscal_year_end_month", Value: strconv.Itoa(form.FiscalYearEndMonth), Message: "month must be between 1 and 12"}
	}
	// Validate the day against the month's longest occurrence (leap year for
	// February).
	if form.FiscalYearEndDay < 1 || form.FiscalYearEndDay > daysInMonth(2024, form.FiscalYearEndMonth) {
		return &shared.FieldError{
			Field:   "fiscal_year_end_day",
			Value:   strconv.Itoa(form.FiscalYearEndDay),
			Message: "day " + strconv.Itoa(form.FiscalYearEndDay) + " does not exist in month " + strconv.Itoa(form.FiscalYearEndMonth),
		}
	}
	return nil
}
