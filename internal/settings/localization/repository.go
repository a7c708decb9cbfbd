package localization

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Repository interface {
	GetByCompany(ctx context.Context, companyID int64) (Localization, error)
	Upsert(ctx context.Context, loc Localization) (Localization, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const localizationColumns = `id, company_id, language, timezone, date_format, time_format,
	fiscal_year_end_month, fiscal_year_end_day, week_start, number_format, percent_first,
	created_by, updated_by, created_at, updated_at`

func (r *repository) GetByCompany(ctx context.Context, companyID int64) (Localization, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+localizationColumns+` FROM localizations WHERE company_id = $1`, companyID)
	loc, err := scanLocalization(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Localization{}, shared.ErrNotFound
		}
		return Localization{}, err
	}
	return loc, nil
}

// Upsert enforces the one-row-per-company invariant through the unique index
// on company_id: concurrent first visits collapse into a single row.
func (r *repository) Upsert(ctx context.Context, loc Localization) (Localization, error) {
	now := time.Now()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO localizations (
			company_id, language, timezone, date_format, time_format,
			fiscal_year_end_month, fiscal_year_end_day, week_start, number_format, percent_first,
			created_by, updated_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (company_id) DO UPDATE SET
			language = EXCLUDED.language,
			timezone = EXCLUDED.timezone,
			date_format = EXCLUDED.date_format,
			time_format = EXCLUDED.time_format,
			fiscal_year_end_month = EXCLUDED.fiscal_year_end_month,
			fiscal_year_end_day = EXCLUDED.fiscal_year_end_day,
			week_start = EXCLUDED.week_start,
			number_format = EXCLUDED.number_format,
			percent_first = EXCLUDED.percent_first,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
		RETURNING `+localizationColumns,
		loc.CompanyID, loc.Language, loc.Timezone, string(loc.DateFormat), string(loc.TimeFormat),
		loc.FiscalYearEndMonth, loc.FiscalYearEndDay, int(loc.WeekStart), string(loc.NumberFormat), loc.PercentFirst,
		loc.CreatedBy, loc.UpdatedBy, pgtype.Timestamptz{Time: now, Valid: true},
	)
	return scanLocalization(row)
}

func scanLocalization(row pgx.Row) (Localization, error) {
	var (
		loc                  Localization
		dateFormat           string
		timeFormat           string
		weekStart            int
		numberFormat         string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&loc.ID, &loc.CompanyID, &loc.Language, &loc.Timezone, &dateFormat, &timeFormat,
		&loc.FiscalYearEndMonth, &loc.FiscalYearEndDay, &weekStart, &numberFormat, &loc.PercentFirst,
		&loc.CreatedBy, &loc.UpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return Localization{}, err
	}
	loc.DateFormat = DateFormat(dateFormat)
	loc.TimeFormat = TimeFormat(timeFormat)
	loc.WeekStart = WeekStartFromISO(weekStart)
	loc.NumberFormat = NumberFormat(numberFormat)
	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time
	return loc, nil
}
