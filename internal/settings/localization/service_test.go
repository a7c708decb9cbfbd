package localization

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian-erp/internal/platform/i18n"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type memoryLocalizationRepo struct {
	rows   map[int64]Localization
	nextID int64
}

func newMemoryLocalizationRepo() *memoryLocalizationRepo {
	return &memoryLocalizationRepo{rows: make(map[int64]Localization)}
}

func (r *memoryLocalizationRepo) GetByCompany(ctx context.Context, companyID int64) (Localization, error) {
	loc, ok := r.rows[companyID]
	if !ok {
		return Localization{}, shared.ErrNotFound
	}
	return loc, nil
}

func (r *memoryLocalizationRepo) Upsert(ctx context.Context, loc Localization) (Localization, error) {
	if existing, ok := r.rows[loc.CompanyID]; ok {
		loc.ID = existing.ID
		loc.CreatedBy = existing.CreatedBy
		loc.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		loc.ID = r.nextID
		loc.CreatedAt = time.Now()
	}
	loc.UpdatedAt = time.Now()
	r.rows[loc.CompanyID] = loc
	return loc, nil
}

type fakeCatalog struct{}

func (fakeCatalog) Languages() []i18n.Language {
	return []i18n.Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
	}
}

func newTestService(repo Repository, src *fakeSource) *Service {
	svc := NewService(repo, src, fakeCatalog{}, nil)
	svc.now = func() time.Time { return time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func defaultSource() *fakeSource {
	return &fakeSource{
		supported: map[string]bool{"en_US": true, "tr_TR": true},
		firstDay:  map[string]int{"en_US": 7, "tr_TR": 1, "en": 7, "tr": 1},
		percents:  map[string]string{"en_US": "25%", "tr_TR": "%25"},
	}
}

func validForm() UpdateForm {
	return UpdateForm{
		Language:           "en",
		CountryCode:        "US",
		Timezone:           "UTC",
		DateFormat:         DateFormatAbbrev,
		TimeFormat:         TimeFormat24Hour,
		NumberFormat:       NumberFormatCommaDot,
		FiscalYearEndMonth: 12,
		FiscalYearEndDay:   31,
	}
}

func TestGetCreatesDefaultOnFirstVisit(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	loc, err := svc.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, int64(4), loc.CompanyID)
	assert.Equal(t, "en", loc.Language)
	assert.Equal(t, int64(9), loc.CreatedBy)
	assert.NotZero(t, loc.ID)

	again, err := svc.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, loc.ID, again.ID)
	assert.Len(t, repo.rows, 1)
}

func TestUpdateDerivesWeekStartAndPercent(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	form := validForm()
	form.Language = "tr"
	form.CountryCode = "TR"

	saved, err := svc.Update(context.Background(), identity, form)
	require.NoError(t, err)
	assert.Equal(t, WeekStartMonday, saved.WeekStart)
	assert.True(t, saved.PercentFirst)
	assert.Equal(t, int64(9), saved.UpdatedBy)
}

func TestUpdateExplicitWeekStartOverrides(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	form := validForm()
	form.WeekStart = WeekStartSaturday

	saved, err := svc.Update(context.Background(), identity, form)
	require.NoError(t, err)
	assert.Equal(t, WeekStartSaturday, saved.WeekStart)
}

func TestUpdatePreservesCreator(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())

	first := shared.Identity{UserID: 1, CompanyID: 4}
	_, err := svc.Get(context.Background(), first)
	require.NoError(t, err)

	second := shared.Identity{UserID: 2, CompanyID: 4}
	saved, err := svc.Update(context.Background(), second, validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.CreatedBy)
	assert.Equal(t, int64(2), saved.UpdatedBy)
}

func TestUpdateValidation(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	cases := []struct {
		name   string
		mutate func(*UpdateForm)
		field  string
	}{
		{"missing language", func(f *UpdateForm) { f.Language = " " }, "language"},
		{"missing timezone", func(f *UpdateForm) { f.Timezone = "" }, "timezone"},
		{"unknown timezone", func(f *UpdateForm) { f.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad date format", func(f *UpdateForm) { f.DateFormat = "2006.01.02" }, "date_format"},
		{"bad time format", func(f *UpdateForm) { f.TimeFormat = "15h04" }, "time_format"},
		{"bad number format", func(f *UpdateForm) { f.NumberFormat = "underscore" }, "number_format"},
		{"week start out of range", func(f *UpdateForm) { f.WeekStart = 8 }, "week_start"},
		{"month zero", func(f *UpdateForm) { f.FiscalYearEndMonth = 0 }, "fiscal_year_end_month"},
		{"month thirteen", func(f *UpdateForm) { f.FiscalYearEndMonth = 13 }, "fiscal_year_end_month"},
		{"day zero", func(f *UpdateForm) { f.FiscalYearEndDay = 0 }, "fiscal_year_end_day"},
		{"february thirtieth", func(f *UpdateForm) { f.FiscalYearEndMonth = 2; f.FiscalYearEndDay = 30 }, "fiscal_year_end_day"},
		{"april thirty-first", func(f *UpdateForm) { f.FiscalYearEndMonth = 4; f.FiscalYearEndDay = 31 }, "fiscal_year_end_day"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			_, err := svc.Update(context.Background(), identity, form)
			require.Error(t, err)
			fe, ok := shared.AsFieldError(err)
			require.True(t, ok, "expected a field error, got %v", err)
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

func TestUpdateAcceptsLeapDay(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	form := validForm()
	form.FiscalYearEndMonth = 2
	form.FiscalYearEndDay = 29

	saved, err := svc.Update(context.Background(), identity, form)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.FiscalYearEndMonth)
	assert.Equal(t, 29, saved.FiscalYearEndDay)
}

func TestLanguages(t *testing.T) {
	svc := newTestService(newMemoryLocalizationRepo(), defaultSource())
	langs := svc.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, "en", langs[0].Code)
}

func TestFiscalYearServiceAccessors(t *testing.T) {
	repo := newMemoryLocalizationRepo()
	svc := newTestService(repo, defaultSource())
	identity := shared.Identity{UserID: 9, CompanyID: 4}

	form := validForm()
	form.FiscalYearEndMonth = 6
	form.FiscalYearEndDay = 30
	_, err := svc.Update(context.Background(), identity, form)
	require.NoError(t, err)

	// now is pinned to 2024-07-15, past this year's June 30.
	end, err := svc.FiscalYearEndDate(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)

	start, err := svc.FiscalYearStartDate(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestPreview(t *testing.T) {
	svc := newTestService(newMemoryLocalizationRepo(), defaultSource())

	result := svc.Preview("tr", "TR")
	assert.Equal(t, "tr_TR", result.Locale)
	assert.Equal(t, int(WeekStartMonday), result.WeekStart)
	assert.Equal(t, "Monday", result.WeekStartName)
	assert.True(t, result.PercentFirst)
	assert.Equal(t, "%25", result.PercentExample)

	fallback := svc.Preview("en", "ZZ")
	assert.Equal(t, "en", fallback.Locale)
}
