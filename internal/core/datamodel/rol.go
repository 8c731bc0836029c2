package datamodel

import "time"

type Rol struct {
	ID          int64      `gorm:"primaryKey"`
	Name        string     `gorm:"column:name;not null"`
	Description string     `gorm:"column:description"`
	Active      bool       `gorm:"column:active;default:true"`
	CreateAt    time.Time  `gorm:"column:create_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at"`
}

func (Rol) TableName() string {
	return "rols"
}

func (r *Rol) StampCreated(t time.Time) {
	r.CreateAt = t
}

func (r *Rol) MarkDeleted(t time.Time) {
	r.DeleteAt = &t
}
