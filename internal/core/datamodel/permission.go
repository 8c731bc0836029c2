package datamodel

import "time"

// Permission is an independent four-flag capability set. Flags are plain
// booleans; nothing here ties a permission row to a single rol or form.
type Permission struct {
	ID        int64     `gorm:"primaryKey"`
	CanRead   bool      `gorm:"column:can_read;default:false"`
	CanCreate bool      `gorm:"column:can_create;default:false"`
	CanUpdate bool      `gorm:"column:can_update;default:false"`
	CanDelete bool      `gorm:"column:can_delete;default:false"`
	CreateAt  time.Time `gorm:"column:create_at"`
}

func (Permission) TableName() string {
	return "permissions"
}

func (p *Permission) StampCreated(t time.Time) {
	p.CreateAt = t
}
