package access

import (
	"log/slog"
	"time"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const rolUserEntityName = "rol user"

type RolUserStoreAPI interface {
	entity.Store[datamodel.RolUser]
	GetByUserID(userID int64) ([]*datamodel.RolUser, error)
}

type RolUserDTO struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	RolID    int64     `json:"rol_id"`
	CreateAt time.Time `json:"create_at,omitempty"`
}

func (d RolUserDTO) EntityID() int64 {
	return d.ID
}

type RolUserMapper struct{}

func (RolUserMapper) ValidateDTO(d RolUserDTO) error {
	v := validation.NewValidator()
	v.Field("user_id", d.UserID).Reference()
	v.Field("rol_id", d.RolID).Reference()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (RolUserMapper) ToEntity(d RolUserDTO) *datamodel.RolUser {
	return &datamodel.RolUser{
		ID:       d.ID,
		UserID:   d.UserID,
		RolID:    d.RolID,
		CreateAt: d.CreateAt,
	}
}

func (RolUserMapper) ToDTO(e *datamodel.RolUser) RolUserDTO {
	return RolUserDTO{
		ID:       e.ID,
		UserID:   e.UserID,
		RolID:    e.RolID,
		CreateAt: e.CreateAt,
	}
}

func NewRolUserService(store RolUserStoreAPI, logger *slog.Logger) *entity.Service[RolUserDTO, datamodel.RolUser] {
	return entity.NewService[RolUserDTO, datamodel.RolUser](rolUserEntityName, store, RolUserMapper{}, logger)
}

func NewRolUserHandler(service entity.ServiceAPI[RolUserDTO]) *entity.Handler[RolUserDTO] {
	return entity.NewHandler(rolUserEntityName, service)
}
