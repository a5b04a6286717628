// Package entity contains the core business objects of the console:
// the records the platform backend manages and the paging/filter state around them.
package entity

import "time"

// Record is one entity instance as returned by the backend.
type Record interface {
	GetID() string
	GetCreatedAt() time.Time
}

// Base holds the fields every backend record shares.
type Base struct {
	ID        string    `json:"id"`        // Unique identifier assigned by the backend.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when the record was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}

// GetID returns the record identifier.
func (b Base) GetID() string {
	return b.ID
}

// GetCreatedAt returns the creation timestamp used for date-range filtering.
func (b Base) GetCreatedAt() time.Time {
	return b.CreatedAt
}
