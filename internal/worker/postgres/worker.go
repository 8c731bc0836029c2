package postgres

import (
	"errors"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"
	"github.com/dcastaneda/security-admin/internal/worker"
	"gorm.io/gorm"
)

type WorkerStore struct {
	*gormstore.Store[datamodel.Worker]
}

func NewWorkerStore(db *gorm.DB) worker.StoreAPI {
	return &WorkerStore{Store: gormstore.New[datamodel.Worker](db)}
}

func (s *WorkerStore) ExistsIdentityDocument(document string, excludeID int64) (bool, error) {
	var count int64
	err := s.DB().Model(&datamodel.Worker{}).
		Where("identity_document = ? AND delete_at IS NULL AND id <> ?", document, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type LoginStore struct {
	*gormstore.Store[datamodel.WorkerLogin]
}

func NewLoginStore(db *gorm.DB) worker.LoginStoreAPI {
	return &LoginStore{Store: gormstore.New[datamodel.WorkerLogin](db)}
}

func (s *LoginStore) ExistsUsername(username string, excludeID int64) (bool, error) {
	var count int64
	err := s.DB().Model(&datamodel.WorkerLogin{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *LoginStore) GetByUsername(username string) (*datamodel.WorkerLogin, error) {
	var login datamodel.WorkerLogin
	err := s.DB().Where("username = ?", username).First(&login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}
