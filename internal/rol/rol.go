package rol

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const entityName = "rol"

type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreateAt    time.Time `json:"create_at,omitempty"`
}

func (d DTO) EntityID() int64 {
	return d.ID
}

type Mapper struct{}

func (Mapper) ValidateDTO(d DTO) error {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(100)
	v.Field("description", d.Description).MaxLength(500)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.Rol {
	return &datamodel.Rol{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Active:      d.Active,
		CreateAt:    d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.Rol) DTO {
	return DTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Active:      e.Active,
		CreateAt:    e.CreateAt,
	}
}

func NewService(store entity.Store[datamodel.Rol], logger *slog.Logger) *entity.Service[DTO, datamodel.Rol] {
	return entity.NewService(entityName, store, Mapper{}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
