package worker

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

const entityName = "worker"

type StoreAPI interface {
	entity.Store[datamodel.Worker]
	ExistsIdentityDocument(document string, excludeID int64) (bool, error)
}

type DTO struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	IdentityDocument string     `json:"identity_document"`
	JobTitle         string     `json:"job_title,omitempty"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	HireDate         *time.Time `json:"hire_date,omitempty"`
	CreateAt         time.Time  `json:"create_at,omitempty"`
}

func (d DTO) EntityID() int64 {
	return d.ID
}

type Mapper struct {
	store StoreAPI
}

func (Mapper) ValidateDTO(d DTO) error {
	v := validation.NewValidator()
	v.Field("first_name", d.FirstName).Required().MaxLength(100)
	v.Field("last_name", d.LastName).Required().MaxLength(100)
	v.Field("identity_document", d.IdentityDocument).Required().MaxLength(50)
	v.Field("email", d.Email).Email().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.Worker {
	return &datamodel.Worker{
		ID:               d.ID,
		FirstName:        strings.TrimSpace(d.FirstName),
		LastName:         strings.TrimSpace(d.LastName),
		IdentityDocument: strings.TrimSpace(d.IdentityDocument),
		JobTitle:         d.JobTitle,
		Email:            strings.TrimSpace(d.Email),
		Phone:            d.Phone,
		HireDate:         d.HireDate,
		CreateAt:         d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.Worker) DTO {
	return DTO{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		IdentityDocument: e.IdentityDocument,
		JobTitle:         e.JobTitle,
		Email:            e.Email,
		Phone:            e.Phone,
		HireDate:         e.HireDate,
		CreateAt:         e.CreateAt,
	}
}

func (m Mapper) CheckUnique(d DTO, excludeID int64) error {
	taken, err := m.store.ExistsIdentityDocument(strings.TrimSpace(d.IdentityDocument), excludeID)
	if err != nil {
		return internal.NewPersistenceError("worker identity document probe", err)
	}
	if taken {
		return internal.NewConflictError(
			fmt.Sprintf("identity document %q is already registered", strings.TrimSpace(d.IdentityDocument)),
			internal.ErrCodeDuplicateDocument)
	}
	return nil
}

func NewService(store StoreAPI, logger *slog.Logger) *entity.Service[DTO, datamodel.Worker] {
	return entity.NewService[DTO, datamodel.Worker](entityName, store, Mapper{store: store}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
