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

const loginEntityName = "worker login"

type LoginStoreAPI interface {
	entity.Store[datamodel.WorkerLogin]
	ExistsUsername(username string, excludeID int64) (bool, error)
	GetByUsername(username string) (*datamodel.WorkerLogin, error)
}

// LoginDTO is the credential record at the boundary. The password is
// accepted pre-hashed on writes and redacted on reads.
type LoginDTO struct {
	ID       int64     `json:"id"`
	WorkerID int64     `json:"worker_id"`
	Username string    `json:"username"`
	Password string    `json:"password,omitempty"`
	Status   string    `json:"status"`
	CreateAt time.Time `json:"create_at,omitempty"`
}

func (d LoginDTO) EntityID() int64 {
	return d.ID
}

type LoginMapper struct {
	store LoginStoreAPI
}

func (LoginMapper) ValidateDTO(d LoginDTO) error {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required().MaxLength(100)
	v.Field("worker_id", d.WorkerID).Reference()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (LoginMapper) ToEntity(d LoginDTO) *datamodel.WorkerLogin {
	status := d.Status
	if status == "" {
		status = datamodel.LoginStatusActive
	}
	return &datamodel.WorkerLogin{
		ID:       d.ID,
		WorkerID: d.WorkerID,
		Username: strings.TrimSpace(d.Username),
		Password: d.Password,
		Status:   status,
		CreateAt: d.CreateAt,
	}
}

func (LoginMapper) ToDTO(e *datamodel.WorkerLogin) LoginDTO {
	return LoginDTO{
		ID:       e.ID,
		WorkerID: e.WorkerID,
		Username: e.Username,
		Status:   e.Status,
		CreateAt: e.CreateAt,
	}
}

func (m LoginMapper) CheckUnique(d LoginDTO, excludeID int64) error {
	taken, err := m.store.ExistsUsername(strings.TrimSpace(d.Username), excludeID)
	if err != nil {
		return internal.NewPersistenceError("worker login username probe", err)
	}
	if taken {
		return internal.NewConflictError(
			fmt.Sprintf("username %q is already taken", strings.TrimSpace(d.Username)),
			internal.ErrCodeDuplicateUsername)
	}
	return nil
}

func NewLoginService(store LoginStoreAPI, logger *slog.Logger) *entity.Service[LoginDTO, datamodel.WorkerLogin] {
	return entity.NewService[LoginDTO, datamodel.WorkerLogin](loginEntityName, store, LoginMapper{store: store}, logger)
}

func NewLoginHandler(service entity.ServiceAPI[LoginDTO]) *entity.Handler[LoginDTO] {
	return entity.NewHandler(loginEntityName, service)
}
