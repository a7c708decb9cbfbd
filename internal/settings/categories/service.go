package categories

import (
	"context"
	"strconv"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

// CreateInput is the raw category data accepted from a form or import.
// Company and creator are never part of the input; they are stamped from the
// session identity.
type CreateInput struct {
	Type    string
	Name    string
	Enabled any
}

// UpdateInput mirrors CreateInput for edits.
type UpdateInput struct {
	Type    string
	Name    string
	Enabled any
}

type Service struct {
	repo  Repository
	audit *shared.AuditLogger
}

func NewService(repo Repository, audit *shared.AuditLogger) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) List(ctx context.Context, identity shared.Identity) ([]Category, error) {
	return s.repo.List(ctx, identity.CompanyID)
}

func (s *Service) Get(ctx context.Context, identity shared.Identity, id int64) (Category, error) {
	if id <= 0 {
		return Category{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, identity.CompanyID, id)
}

// Create validates and persists a new category for the caller's company. A
// duplicate type surfaces as a field error on "type", not a server fault.
func (s *Service) Create(ctx context.Context, identity shared.Identity, input CreateInput) (Category, error) {
	category := Category{
		CompanyID: identity.CompanyID,
		Type:      input.Type,
		Name:      input.Name,
		Enabled:   CoerceBool(input.Enabled),
		CreatedBy: identity.UserID,
	}
	if err := s.validate(category); err != nil {
		return Category{}, err
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return Category{}, err
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			ActorID:   identity.UserID,
			CompanyID: identity.CompanyID,
			Action:    "category.create",
			Entity:    "category",
			EntityID:  strconv.FormatInt(created.ID, 10),
			Meta:      map[string]any{"type": created.Type, "enabled": created.Enabled},
		})
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, identity shared.Identity, id int64, input UpdateInput) error {
	current, err := s.Get(ctx, identity, id)
	if err != nil {
		return err
	}

	next := current
	next.Type = input.Type
	next.Name = input.Name
	next.Enabled = CoerceBool(input.Enabled)
	if err := s.validate(next); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, next); err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			ActorID:   identity.UserID,
			CompanyID: identity.CompanyID,
			Action:    "category.update",
			Entity:    "category",
			EntityID:  strconv.FormatInt(id, 10),
			Meta:      map[string]any{"type": next.Type, "enabled": next.Enabled},
		})
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, identity shared.Identity, id int64) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	if err := s.repo.Delete(ctx, identity.CompanyID, id); err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			ActorID:   identity.UserID,
			CompanyID: identity.CompanyID,
			Action:    "category.delete",
			Entity:    "category",
			EntityID:  strconv.FormatInt(id, 10),
		})
	}
	return nil
}
