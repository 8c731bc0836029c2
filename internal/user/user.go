package user

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

const entityName = "user"

// StoreAPI extends the generic store with the email probe backing the
// uniqueness rule.
type StoreAPI interface {
	entity.Store[datamodel.User]
	ExistsEmail(email string, excludeID int64) (bool, error)
}

// DTO is the user shape at the service boundary. Password is accepted on
// writes and always redacted on reads.
type DTO struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`
	WorkerID *int64    `json:"worker_id,omitempty"`
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
	v.Field("name", d.Name).Required().MaxLength(100)
	v.Field("email", d.Email).Required().Email().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (Mapper) ToEntity(d DTO) *datamodel.User {
	return &datamodel.User{
		ID:       d.ID,
		Name:     strings.TrimSpace(d.Name),
		Email:    strings.TrimSpace(d.Email),
		Password: d.Password,
		WorkerID: d.WorkerID,
		CreateAt: d.CreateAt,
	}
}

func (Mapper) ToDTO(e *datamodel.User) DTO {
	return DTO{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		WorkerID: e.WorkerID,
		CreateAt: e.CreateAt,
	}
}

// CheckUnique rejects an email already used by another live row. Emails
// compare case-sensitively.
func (m Mapper) CheckUnique(d DTO, excludeID int64) error {
	taken, err := m.store.ExistsEmail(strings.TrimSpace(d.Email), excludeID)
	if err != nil {
		return internal.NewPersistenceError("user email probe", err)
	}
	if taken {
		return internal.NewConflictError(
			fmt.Sprintf("email %q is already in use", strings.TrimSpace(d.Email)),
			internal.ErrCodeDuplicateEmail)
	}
	return nil
}

func NewService(store StoreAPI, logger *slog.Logger) *entity.Service[DTO, datamodel.User] {
	return entity.NewService[DTO, datamodel.User](entityName, store, Mapper{store: store}, logger)
}

func NewHandler(service entity.ServiceAPI[DTO]) *entity.Handler[DTO] {
	return entity.NewHandler(entityName, service)
}
