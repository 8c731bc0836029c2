package postgres

import (
	"github.com/dcastaneda/security-admin/internal/access"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"
	"gorm.io/gorm"
)

type RolUserStore struct {
	*gormstore.Store[datamodel.RolUser]
}

func NewRolUserStore(db *gorm.DB) access.RolUserStoreAPI {
	return &RolUserStore{Store: gormstore.New[datamodel.RolUser](db)}
}

func (s *RolUserStore) GetByUserID(userID int64) ([]*datamodel.RolUser, error) {
	var assignments []*datamodel.RolUser
	err := s.DB().
		Where("user_id = ? AND delete_at IS NULL", userID).
		Find(&assignments).Error
	return assignments, err
}

type RolFormPermissionStore struct {
	*gormstore.Store[datamodel.RolFormPermission]
}

func NewRolFormPermissionStore(db *gorm.DB) access.RolFormPermissionStoreAPI {
	return &RolFormPermissionStore{Store: gormstore.New[datamodel.RolFormPermission](db)}
}

func (s *RolFormPermissionStore) GetByRolID(rolID int64) ([]*datamodel.RolFormPermission, error) {
	var grants []*datamodel.RolFormPermission
	err := s.DB().
		Preload("Form").
		Preload("Permission").
		Where("rol_id = ? AND delete_at IS NULL", rolID).
		Find(&grants).Error
	return grants, err
}

func (s *RolFormPermissionStore) GetByFormID(formID int64) ([]*datamodel.RolFormPermission, error) {
	var grants []*datamodel.RolFormPermission
	err := s.DB().
		Preload("Rol").
		Preload("Permission").
		Where("form_id = ? AND delete_at IS NULL", formID).
		Find(&grants).Error
	return grants, err
}

// FormModuleQuery serves the graph's bidirectional module-form traversal.
type FormModuleQuery struct {
	db *gorm.DB
}

func NewFormModuleQuery(db *gorm.DB) access.FormModuleQueryAPI {
	return &FormModuleQuery{db: db}
}

func (q *FormModuleQuery) GetByModuleID(moduleID int64) ([]*datamodel.FormModule, error) {
	var bindings []*datamodel.FormModule
	err := q.db.
		Preload("Form").
		Where("module_id = ? AND delete_at IS NULL", moduleID).
		Find(&bindings).Error
	return bindings, err
}

func (q *FormModuleQuery) GetByFormID(formID int64) ([]*datamodel.FormModule, error) {
	var bindings []*datamodel.FormModule
	err := q.db.
		Preload("Module").
		Where("form_id = ? AND delete_at IS NULL", formID).
		Find(&bindings).Error
	return bindings, err
}
