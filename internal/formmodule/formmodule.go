package formmodule

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const entityName = "form module"

type StoreAPI interface {
	entity.Store[datamodel.FormModule]
	GetByModuleAndForm(moduleID, formID int64) (*datamodel.FormModule, error)
}

type DTO struct {
	ID       int64     `json:"id"`
	ModuleID int64     `json:"module_id"`
	FormID   int64     `json:"form_id"`
	CreateAt time.Time `json:"create_at,omitempty"`
}

func (d DTO) EntityID() int64 {
	return d.ID
}

type Mapper struct {
	store StoreAPI
}

func (Mapper) ValidateDTO(d DTO) error {
	v := validation.NewValidator()
	v.Field("module_id", d.ModuleID).Reference()
	v.Field("form_id", d.FormID).Reference()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.FormModule {
	return &datamodel.FormModule{
		ID:       d.ID,
		ModuleID: d.ModuleID,
		FormID:   d.FormID,
		CreateAt: d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.FormModule) DTO {
	return DTO{
		ID:       e.ID,
		ModuleID: e.ModuleID,
		FormID:   e.FormID,
		CreateAt: e.CreateAt,
	}
}

// CheckUnique blocks binding the same form into the same module twice.
func (m Mapper) CheckUnique(d DTO, excludeID int64) error {
	existing, err := m.store.GetByModuleAndForm(d.ModuleID, d.FormID)
	if err != nil {
		return internal.NewPersistenceError("form module binding probe", err)
	}
	if existing != nil && existing.ID != excludeID {
		return internal.NewConflictError(
			fmt.Sprintf("form %d is already bound to module %d", d.FormID, d.ModuleID),
			internal.ErrCodeDuplicateAssignment)
	}
	return nil
}

func NewService(store StoreAPI, logger *slog.Logger) *entity.Service[DTO, datamodel.FormModule] {
	return entity.NewService[DTO, datamodel.FormModule](entityName, store, Mapper{store: store}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
