package datamodel

import "time"

// FormModule binds one form into one module. A (module, form) pair is bound
// at most once; the services enforce that ahead of insert.
type FormModule struct {
	ID       int64      `gorm:"primaryKey"`
	ModuleID int64      `gorm:"column:module_id;not null"`
	FormID   int64      `gorm:"column:form_id;not null"`
	CreateAt time.Time  `gorm:"column:create_at"`
	DeleteAt *time.Time `gorm:"column:delete_at"`

	Module *Module `gorm:"foreignKey:ModuleID"`
	Form   *Form   `gorm:"foreignKey:FormID"`
}

func (FormModule) TableName() string {
	return "form_modules"
}

func (fm *FormModule) StampCreated(t time.Time) {
	fm.CreateAt = t
}

func (fm *FormModule) MarkDeleted(t time.Time) {
	fm.DeleteAt = &t
}

// RolFormPermission grants a permission set to a rol on a form. Several rows
// may exist for the same (rol, form) pair; effective access ORs them
// per capability.
type RolFormPermission struct {
	ID           int64      `gorm:"primaryKey"`
	RolID        int64      `gorm:"column:rol_id;not null"`
	FormID       int64      `gorm:"column:form_id;not null"`
	PermissionID int64      `gorm:"column:permission_id;not null"`
	CreateAt     time.Time  `gorm:"column:create_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at"`

	Rol        *Rol        `gorm:"foreignKey:RolID"`
	Form       *Form       `gorm:"foreignKey:FormID"`
	Permission *Permission `gorm:"foreignKey:PermissionID"`
}

func (RolFormPermission) TableName() string {
	return "rol_form_permissions"
}

func (rfp *RolFormPermission) StampCreated(t time.Time) {
	rfp.CreateAt = t
}

func (rfp *RolFormPermission) MarkDeleted(t time.Time) {
	rfp.DeleteAt = &t
}

// RolUser assigns a rol to a user.
type RolUser struct {
	ID       int64      `gorm:"primaryKey"`
	UserID   int64      `gorm:"column:user_id;not null"`
	RolID    int64      `gorm:"column:rol_id;not null"`
	CreateAt time.Time  `gorm:"column:create_at"`
	DeleteAt *time.Time `gorm:"column:delete_at"`

	User *User `gorm:"foreignKey:UserID"`
	Rol  *Rol  `gorm:"foreignKey:RolID"`
}

func (RolUser) TableName() string {
	return "rol_users"
}

func (ru *RolUser) StampCreated(t time.Time) {
	ru.CreateAt = t
}

func (ru *RolUser) MarkDeleted(t time.Time) {
	ru.DeleteAt = &t
}
