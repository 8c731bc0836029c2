// Package datamodel holds the persisted row shapes. Services never hand
// these across the HTTP boundary; each feature package maps them to DTOs.
package datamodel

import "time"

// Stamped is implemented by every entity whose creation time is set
// server-side at insert.
type Stamped interface {
	StampCreated(t time.Time)
}

// SoftDeletable marks entities with the two-step delete lifecycle: a set
// delete_at excludes the row from default reads while keeping it joinable.
// Entities without it go straight to physical removal.
type SoftDeletable interface {
	MarkDeleted(t time.Time)
}
