package datamodel

import "time"

type Worker struct {
	ID               int64      `gorm:"primaryKey"`
	FirstName        string     `gorm:"column:first_name;not null"`
	LastName         string     `gorm:"column:last_name;not null"`
	IdentityDocument string     `gorm:"column:identity_document;uniqueIndex;not null"`
	JobTitle         string     `gorm:"column:job_title"`
	Email            string     `gorm:"column:email"`
	Phone            string     `gorm:"column:phone"`
	HireDate         *time.Time `gorm:"column:hire_date"`
	CreateAt         time.Time  `gorm:"column:create_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at"`
}

func (Worker) TableName() string {
	return "workers"
}

func (w *Worker) StampCreated(t time.Time) {
	w.CreateAt = t
}

func (w *Worker) MarkDeleted(t time.Time) {
	w.DeleteAt = &t
}

// WorkerLogin is the credential record bound to a worker. Logins are
// enabled or disabled through Status and removed physically, never
// soft-deleted.
type WorkerLogin struct {
	ID       int64     `gorm:"primaryKey"`
	WorkerID int64     `gorm:"column:worker_id;not null"`
	Username string    `gorm:"column:username;uniqueIndex;not null"`
	Password string    `gorm:"column:password;not null"`
	Status   string    `gorm:"column:status;not null;default:active"`
	CreateAt time.Time `gorm:"column:create_at"`

	Worker *Worker `gorm:"foreignKey:WorkerID"`
}

func (WorkerLogin) TableName() string {
	return "worker_logins"
}

func (l *WorkerLogin) StampCreated(t time.Time) {
	l.CreateAt = t
}

const (
	LoginStatusActive   = "active"
	LoginStatusInactive = "inactive"
)
