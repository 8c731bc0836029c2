package postgres

import (
	"errors"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"
	"github.com/dcastaneda/security-admin/internal/formmodule"
	"gorm.io/gorm"
)

type FormModuleStore struct {
	*gormstore.Store[datamodel.FormModule]
}

func NewFormModuleStore(db *gorm.DB) formmodule.StoreAPI {
	return &FormModuleStore{Store: gormstore.New[datamodel.FormModule](db)}
}

func (s *FormModuleStore) GetByModuleAndForm(moduleID, formID int64) (*datamodel.FormModule, error) {
	var fm datamodel.FormModule
	err := s.DB().
		Where("module_id = ? AND form_id = ? AND delete_at IS NULL", moduleID, formID).
		First(&fm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fm, nil
}
