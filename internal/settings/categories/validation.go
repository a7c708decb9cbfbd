package categories

import (
	"strings"

	"github.com/meridian-erp/meridian-erp/internal/shared"
)

func (s *Service) validate(c Category) error {
	if strings.TrimSpace(c.Type) == "" {
		return &shared.FieldError{Field: "type", Message: "category type is required"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &shared.FieldError{Field: "name", Message: "category name is required"}
	}
	if c.CompanyID <= 0 {
		return shared.ErrNoIdentity
	}
	return nil
}
