package categories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian-erp/internal/platform/db"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type Repository interface {
	List(ctx context.Context, companyID int64) ([]Category, error)
	Get(ctx context.Context, companyID, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) error
	Delete(ctx context.Context, companyID, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const categoryColumns = `id, company_id, type, name, enabled, created_by, created_at, updated_at`

func (r *repository) List(ctx context.Context, companyID int64) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE company_id = $1 ORDER BY type`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) Get(ctx context.Context, companyID, id int64) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE company_id = $1 AND id = $2`, companyID, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, shared.ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

// Create inserts the category inside a transaction: a pre-check turns the
// common duplicate case into a friendly field error, and the unique index on
// (company_id, type) closes the remaining race between concurrent requests.
func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	var created Category
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE company_id = $1 AND type = $2)`,
			category.CompanyID, category.Type).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return shared.NewDuplicateFieldError("type", category.Type)
		}

		now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
		row := tx.QueryRow(ctx, `
			INSERT INTO categories (company_id, type, name, enabled, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+categoryColumns,
			category.CompanyID, category.Type, category.Name, category.Enabled, category.CreatedBy, now,
		)
		var err error
		created, err = scanCategory(row)
		return err
	})
	if err != nil {
		return Category{}, mapUniqueViolation(err, category.Type)
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, category Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories SET type = $1, name = $2, enabled = $3, updated_at = $4
		WHERE company_id = $5 AND id = $6`,
		category.Type, category.Name, category.Enabled,
		pgtype.Timestamptz{Time: time.Now(), Valid: true},
		category.CompanyID, category.ID,
	)
	if err != nil {
		return mapUniqueViolation(err, category.Type)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// mapUniqueViolation converts the Postgres 23505 raised by the
// (company_id, type) index into the same field error the pre-check produces.
func mapUniqueViolation(err error, typeValue string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shared.NewDuplicateFieldError("type", typeValue)
	}
	return err
}

func scanCategory(row pgx.Row) (Category, error) {
	var (
		c                    Category
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&c.ID, &c.CompanyID, &c.Type, &c.Name, &c.Enabled, &c.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return Category{}, err
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return c, nil
}
