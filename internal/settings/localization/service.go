package localization

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/meridian-erp/meridian-erp/internal/platform/i18n"
	"github.com/meridian-erp/meridian-erp/internal/platform/locale"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// UpdateForm carries the localization settings a user submitted. CountryCode
// feeds locale derivation only and is not persisted. WeekStart zero means
// "derive from the locale"; any explicit value is a user override.
type UpdateForm struct {
	Language           string
	CountryCode        string
	Timezone           string
	DateFormat         DateFormat
	TimeFormat         TimeFormat
	NumberFormat       NumberFormat
	FiscalYearEndMonth int
	FiscalYearEndDay   int
	WeekStart          WeekStart
}

type Service struct {
	repo    Repository
	locales locale.Source
	catalog i18n.Catalog
	audit   *shared.AuditLogger
	now     func() time.Time
}

func NewService(repo Repository, locales locale.Source, catalog i18n.Catalog, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, locales: locales, catalog: catalog, audit: audit, now: time.Now}
}

// Get returns the company's localization settings, creating the default row
// on first visit so every company always has exactly one.
func (s *Service) Get(ctx context.Context, identity shared.Identity) (Localization, error) {
	loc, err := s.repo.GetByCompany(ctx, identity.CompanyID)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return Localization{}, err
	}

	loc = Default(identity.CompanyID)
	loc.CreatedBy = identity.UserID
	loc.UpdatedBy = identity.UserID
	return s.repo.Upsert(ctx, loc)
}

// Update validates and persists the submitted settings, deriving week start
// and percent placement from the resolved locale. Creator id is preserved;
// modifier id is stamped from the session identity.
func (s *Service) Update(ctx context.Context, identity shared.Identity, form UpdateForm) (Localization, error) {
	if err := s.validate(form); err != nil {
		return Localization{}, err
	}

	current, err := s.Get(ctx, identity)
	if err != nil {
		return Localization{}, err
	}

	localeID := ResolveLocale(s.locales, form.Language, form.CountryCode)

	weekStart := form.WeekStart
	if weekStart == 0 {
		weekStart = ResolveWeekStart(s.locales, localeID, s.now())
	}

	next := current
	next.Language = form.Language
	next.Timezone = form.Timezone
	next.DateFormat = form.DateFormat
	next.TimeFormat = form.TimeFormat
	next.NumberFormat = form.NumberFormat
	next.FiscalYearEndMonth = form.FiscalYearEndMonth
	next.FiscalYearEndDay = form.FiscalYearEndDay
	next.WeekStart = weekStart
	next.PercentFirst = IsPercentFirst(s.locales, form.Language, form.CountryCode)
	next.UpdatedBy = identity.UserID

	saved, err := s.repo.Upsert(ctx, next)
	if err != nil {
		return Localization{}, err
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			ActorID:   identity.UserID,
			CompanyID: identity.CompanyID,
			Action:    "localization.update",
			Entity:    "localization",
			EntityID:  strconv.FormatInt(saved.ID, 10),
			Meta: map[string]any{
				"language":   saved.Language,
				"timezone":   saved.Timezone,
				"week_start": saved.WeekStart.String(),
			},
		})
	}
	return saved, nil
}

// Languages lists the languages the application can be displayed in.
func (s *Service) Languages() []i18n.Language {
	return s.catalog.Languages()
}

// FiscalYearEndDate reports the company's current fiscal year end.
func (s *Service) FiscalYearEndDate(ctx context.Context, identity shared.Identity) (time.Time, error) {
	loc, err := s.Get(ctx, identity)
	if err != nil {
		return time.Time{}, err
	}
	return loc.FiscalYearEndDate(s.now()), nil
}

// FiscalYearStartDate reports the company's current fiscal year start.
func (s *Service) FiscalYearStartDate(ctx context.Context, identity shared.Identity) (time.Time, error) {
	loc, err := s.Get(ctx, identity)
	if err != nil {
		return time.Time{}, err
	}
	return loc.FiscalYearStartDate(s.now()), nil
}
