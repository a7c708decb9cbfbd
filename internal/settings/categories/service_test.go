package categories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type memoryCategoryRepo struct {
	rows   map[int64]Category
	nextID int64
}

func newMemoryCategoryRepo() *memoryCategoryRepo {
	return &memoryCategoryRepo{rows: make(map[int64]Category)}
}

func (r *memoryCategoryRepo) List(ctx context.Context, companyID int64) ([]Category, error) {
	var out []Category
	for _, c := range r.rows {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) Get(ctx context.Context, companyID, id int64) (Category, error) {
	c, ok := r.rows[id]
	if !ok || c.CompanyID != companyID {
		return Category{}, shared.ErrNotFound
	}
	return c, nil
}

func (r *memoryCategoryRepo) Create(ctx context.Context, category Category) (Category, error) {
	for _, c := range r.rows {
		if c.CompanyID == category.CompanyID && c.Type == category.Type {
			return Category{}, shared.NewDuplicateFieldError("type", category.Type)
		}
	}
	r.nextID++
	category.ID = r.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	r.rows[category.ID] = category
	return category, nil
}

func (r *memoryCategoryRepo) Update(ctx context.Context, category Category) error {
	current, ok := r.rows[category.ID]
	if !ok || current.CompanyID != category.CompanyID {
		return shared.ErrNotFound
	}
	for _, c := range r.rows {
		if c.ID != category.ID && c.CompanyID == category.CompanyID && c.Type == category.Type {
			return shared.NewDuplicateFieldError("type", category.Type)
		}
	}
	category.UpdatedAt = time.Now()
	r.rows[category.ID] = category
	return nil
}

func (r *memoryCategoryRepo) Delete(ctx context.Context, companyID, id int64) error {
	c, ok := r.rows[id]
	if !ok || c.CompanyID != companyID {
		return shared.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

var (
	acme  = shared.Identity{UserID: 10, CompanyID: 1}
	globx = shared.Identity{UserID: 20, CompanyID: 2}
)

func TestCreateStampsIdentity(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	created, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.CompanyID)
	assert.Equal(t, int64(10), created.CreatedBy)
	assert.True(t, created.Enabled)
	assert.NotZero(t, created.ID)
}

func TestCreateRejectsDuplicateTypePerCompany(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	_, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Other name", Enabled: true})
	require.Error(t, err)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "type", fe.Field)
	assert.Equal(t, "expense", fe.Value)
}

func TestCreateSameTypeAcrossCompanies(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	_, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), globx, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	assert.NoError(t, err, "the same type must be allowed for a different company")
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	_, err := svc.Create(context.Background(), acme, CreateInput{Type: "", Name: "Expense"})
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "type", fe.Field)

	_, err = svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "  "})
	fe, ok = shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "name", fe.Field)

	_, err = svc.Create(context.Background(), shared.Identity{}, CreateInput{Type: "expense", Name: "Expense"})
	assert.ErrorIs(t, err, shared.ErrNoIdentity)
}

func TestListScopedToCompany(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	_, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), globx, CreateInput{Type: "income", Name: "Income", Enabled: true})
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), acme)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "expense", mine[0].Type)
}

func TestUpdateRejectsDuplicateType(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	first, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), acme, CreateInput{Type: "income", Name: "Income", Enabled: true})
	require.NoError(t, err)

	err = svc.Update(context.Background(), acme, first.ID, UpdateInput{Type: "income", Name: "Expense", Enabled: true})
	require.Error(t, err)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "type", fe.Field)
}

func TestUpdateOtherCompanyIsNotFound(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	created, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)

	err = svc.Update(context.Background(), globx, created.ID, UpdateInput{Type: "expense", Name: "Renamed", Enabled: true})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(newMemoryCategoryRepo(), nil)

	created, err := svc.Create(context.Background(), acme, CreateInput{Type: "expense", Name: "Expense", Enabled: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), acme, created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), acme, created.ID), shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), acme, 0), shared.ErrNotFound)
}
