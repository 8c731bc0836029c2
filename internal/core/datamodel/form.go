package datamodel

import "time"

// Form is a protected screen or resource. Forms carry no delete lifecycle;
// deactivation happens through Active.
type Form struct {
	ID       int64     `gorm:"primaryKey"`
	Name     string    `gorm:"column:name;not null"`
	Code     string    `gorm:"column:code;uniqueIndex;not null"`
	Active   bool      `gorm:"column:active;default:true"`
	CreateAt time.Time `gorm:"column:create_at"`
}

func (Form) TableName() string {
	return "forms"
}

func (f *Form) StampCreated(t time.Time) {
	f.CreateAt = t
}

// Module groups forms for navigation.
type Module struct {
	ID       int64     `gorm:"primaryKey"`
	Code     string    `gorm:"column:code;not null"`
	Active   bool      `gorm:"column:active;default:true"`
	CreateAt time.Time `gorm:"column:create_at"`
}

func (Module) TableName() string {
	return "modules"
}

func (m *Module) StampCreated(t time.Time) {
	m.CreateAt = t
}
