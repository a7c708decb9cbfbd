package auth

import "time"

// User represents an authenticated user account. CompanyID is the company
// the user belongs to; it becomes the tenant scope of their session.
type User struct {
	ID           int64
	CompanyID    int64
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
