package datamodel

import "time"

type User struct {
	ID       int64      `gorm:"primaryKey"`
	Name     string     `gorm:"column:name;not null"`
	Email    string     `gorm:"column:email;uniqueIndex;not null"`
	Password string     `gorm:"column:password;not null"`
	WorkerID *int64     `gorm:"column:worker_id"`
	CreateAt time.Time  `gorm:"column:create_at"`
	DeleteAt *time.Time `gorm:"column:delete_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) StampCreated(t time.Time) {
	u.CreateAt = t
}

func (u *User) MarkDeleted(t time.Time) {
	u.DeleteAt = &t
}
