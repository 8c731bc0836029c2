package access

import (
	"log/slog"
	"time"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const rfpEntityName = "rol form permission"

type RolFormPermissionStoreAPI interface {
	entity.Store[datamodel.RolFormPermission]
	GetByRolID(rolID int64) ([]*datamodel.RolFormPermission, error)
	GetByFormID(formID int64) ([]*datamodel.RolFormPermission, error)
}

// RolFormPermissionDTO grants permission set PermissionID to rol RolID on
// form FormID. Duplicate (rol, form) pairs are allowed; resolution ORs
// their capabilities.
type RolFormPermissionDTO struct {
	ID           int64     `json:"id"`
	RolID        int64     `json:"rol_id"`
	FormID       int64     `json:"form_id"`
	PermissionID int64     `json:"permission_id"`
	CreateAt     time.Time `json:"create_at,omitempty"`
}

func (d RolFormPermissionDTO) EntityID() int64 {
	return d.ID
}

type RolFormPermissionMapper struct{}

func (RolFormPermissionMapper) ValidateDTO(d RolFormPermissionDTO) error {
	v := validation.NewValidator()
	v.Field("rol_id", d.RolID).Reference()
	v.Field("form_id", d.FormID).Reference()
	v.Field("permission_id", d.PermissionID).Reference()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (RolFormPermissionMapper) ToEntity(d RolFormPermissionDTO) *datamodel.RolFormPermission {
	return &datamodel.RolFormPermission{
		ID:           d.ID,
		RolID:        d.RolID,
		FormID:       d.FormID,
		PermissionID: d.PermissionID,
		CreateAt:     d.CreateAt,
	}
}

func (RolFormPermissionMapper) ToDTO(e *datamodel.RolFormPermission) RolFormPermissionDTO {
	return RolFormPermissionDTO{
		ID:           e.ID,
		RolID:        e.RolID,
		FormID:       e.FormID,
		PermissionID: e.PermissionID,
		CreateAt:     e.CreateAt,
	}
}

func NewRolFormPermissionService(store RolFormPermissionStoreAPI, logger *slog.Logger) *entity.Service[RolFormPermissionDTO, datamodel.RolFormPermission] {
	return entity.NewService[RolFormPermissionDTO, datamodel.RolFormPermission](rfpEntityName, store, RolFormPermissionMapper{}, logger)
}

func NewRolFormPermissionHandler(service entity.ServiceAPI[RolFormPermissionDTO]) *entity.Handler[RolFormPermissionDTO] {
	return entity.NewHandler(rfpEntityName, service)
}
