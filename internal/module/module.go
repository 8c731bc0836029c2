package module

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const entityName = "module"

type DTO struct {
	ID       int64     `json:"id"`
	Code     string    `json:"code"`
	Active   bool      `json:"active"`
	CreateAt time.Time `json:"create_at,omitempty"`
}

func (d DTO) EntityID() int64 {
	return d.ID
}

type Mapper struct{}

func (Mapper) ValidateDTO(d DTO) error {
	v := validation.NewValidator()
	v.Field("code", d.Code).Required().MaxLength(50)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.Module {
	return &datamodel.Module{
		ID:       d.ID,
		Code:     strings.TrimSpace(d.Code),
		Active:   d.Active,
		CreateAt: d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.Module) DTO {
	return DTO{
		ID:       e.ID,
		Code:     e.Code,
		Active:   e.Active,
		CreateAt: e.CreateAt,
	}
}

func NewService(store entity.Store[datamodel.Module], logger *slog.Logger) *entity.Service[DTO, datamodel.Module] {
	return entity.NewService(entityName, store, Mapper{}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
