package postgres

import (
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"
	"github.com/dcastaneda/security-admin/internal/user"
	"gorm.io/gorm"
)

type UserStore struct {
	*gormstore.Store[datamodel.User]
}

func NewUserStore(db *gorm.DB) user.StoreAPI {
	return &UserStore{Store: gormstore.New[datamodel.User](db)}
}

// ExistsEmail reports whether another live row already uses the email.
// excludeID skips the record's own row on update-time checks.
func (s *UserStore) ExistsEmail(email string, excludeID int64) (bool, error) {
	var count int64
	err := s.DB().Model(&datamodel.User{}).
		Where("email = ? AND delete_at IS NULL AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
