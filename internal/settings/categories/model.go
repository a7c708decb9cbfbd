package categories

import "time"

// Category classifies company records (accounts, items, documents) under a
// logical type. The (company_id, type) pair is unique: a company carries at
// most one category per type.
type Category struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
