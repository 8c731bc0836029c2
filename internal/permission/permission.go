package permission

import (
	"log/slog"
	"time"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
)

const entityName = "permission"

// DTO carries the four independent capability flags. All-false is a valid
// permission set, so there is nothing to validate.
type DTO struct {
	ID        int64     `json:"id"`
	CanRead   bool      `json:"can_read"`
	CanCreate bool      `json:"can_create"`
	CanUpdate bool      `json:"can_update"`
	CanDelete bool      `json:"can_delete"`
	CreateAt  time.Time `json:"create_at,omitempty"`
}

func (d DTO) EntityID() int64 {
	return d.ID
}

type Mapper struct{}

func (Mapper) ValidateDTO(d DTO) error {
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.Permission {
	return &datamodel.Permission{
		ID:        d.ID,
		CanRead:   d.CanRead,
		CanCreate: d.CanCreate,
		CanUpdate: d.CanUpdate,
		CanDelete: d.CanDelete,
		CreateAt:  d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.Permission) DTO {
	return DTO{
		ID:        e.ID,
		CanRead:   e.CanRead,
		CanCreate: e.CanCreate,
		CanUpdate: e.CanUpdate,
		CanDelete: e.CanDelete,
		CreateAt:  e.CreateAt,
	}
}

func NewService(store entity.Store[datamodel.Permission], logger *slog.Logger) *entity.Service[DTO, datamodel.Permission] {
	return entity.NewService(entityName, store, Mapper{}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
