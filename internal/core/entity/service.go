package entity

import (
	"log/slog"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
)

// Service is the generic business layer over a Store: validate, probe
// uniqueness, map, persist, map back. Concrete entities supply a Mapper;
// mappers that also implement UniqueRule get the probe wired automatically.
//
// The uniqueness probe is check-then-act and therefore best effort; the
// store's own constraint is the authoritative guard and surfaces as a
// conflict error from Create/Update.
type Service[D Identifiable, T any] struct {
	name   string
	store  Store[T]
	mapper Mapper[D, T]
	unique UniqueRule[D]
	logger *slog.Logger
	now    func() time.Time
}

func NewService[D Identifiable, T any](name string, store Store[T], mapper Mapper[D, T], logger *slog.Logger) *Service[D, T] {
	s := &Service[D, T]{
		name:   name,
		store:  store,
		mapper: mapper,
		logger: logger,
		now:    time.Now,
	}
	if rule, ok := any(mapper).(UniqueRule[D]); ok {
		s.unique = rule
	}
	return s
}

// Create validates the DTO, stamps the creation time server-side and
// persists, returning the DTO with its generated id.
func (s *Service[D, T]) Create(dto D) (D, error) {
	var zero D

	if err := s.mapper.ValidateDTO(dto); err != nil {
		s.logger.Warn("create rejected by validation", "entity", s.name, "error", err)
		return zero, err
	}

	if s.unique != nil {
		if err := s.unique.CheckUnique(dto, 0); err != nil {
			s.logger.Warn("create rejected by uniqueness rule", "entity", s.name, "error", err)
			return zero, err
		}
	}

	e := s.mapper.ToEntity(dto)
	if stamped, ok := any(e).(datamodel.Stamped); ok {
		stamped.StampCreated(s.now())
	}

	if err := s.store.Create(e); err != nil {
		return zero, s.storeFailure("create", 0, err)
	}

	created := s.mapper.ToDTO(e)
	s.logger.Info("entity created", "entity", s.name, "id", created.EntityID())
	return created, nil
}

func (s *Service[D, T]) GetAll() ([]D, error) {
	entities, err := s.store.GetAll()
	if err != nil {
		return nil, s.storeFailure("get all", 0, err)
	}
	return MapList(s.mapper, entities), nil
}

// GetByID surfaces a missing row as an entity-not-found error.
func (s *Service[D, T]) GetByID(id int64) (D, error) {
	var zero D

	e, err := s.store.GetByID(id)
	if err != nil {
		return zero, s.storeFailure("get by id", id, err)
	}
	if e == nil {
		return zero, internal.NewEntityNotFound(s.name, id)
	}
	return s.mapper.ToDTO(e), nil
}

// Update re-validates and fully replaces the mutable fields of the row
// named by the DTO's id. A missing row is a normal outcome reported as
// false, so batch callers can proceed without error-driven control flow.
func (s *Service[D, T]) Update(dto D) (bool, error) {
	if err := s.mapper.ValidateDTO(dto); err != nil {
		s.logger.Warn("update rejected by validation", "entity", s.name, "id", dto.EntityID(), "error", err)
		return false, err
	}

	existing, err := s.store.GetByID(dto.EntityID())
	if err != nil {
		return false, s.storeFailure("update", dto.EntityID(), err)
	}
	if existing == nil {
		s.logger.Info("update target not found", "entity", s.name, "id", dto.EntityID())
		return false, nil
	}

	if s.unique != nil {
		if err := s.unique.CheckUnique(dto, dto.EntityID()); err != nil {
			s.logger.Warn("update rejected by uniqueness rule", "entity", s.name, "id", dto.EntityID(), "error", err)
			return false, err
		}
	}

	ok, err := s.store.Update(s.mapper.ToEntity(dto))
	if err != nil {
		return false, s.storeFailure("update", dto.EntityID(), err)
	}
	return ok, nil
}

// Delete soft-deletes when the entity has the lifecycle, otherwise removes
// the row. Existence-check failures are logged and treated as nothing to do.
func (s *Service[D, T]) Delete(id int64) (bool, error) {
	existing, err := s.store.GetByID(id)
	if err != nil {
		s.logger.Error("delete existence check failed", "entity", s.name, "id", id, "error", err)
		return false, nil
	}
	if existing == nil {
		return false, nil
	}

	ok, err := s.store.Delete(id)
	if err != nil {
		return false, s.storeFailure("delete", id, err)
	}
	if ok {
		s.logger.Info("entity deleted", "entity", s.name, "id", id)
	}
	return ok, nil
}

// PermanentDelete physically removes the row, bypassing soft delete.
func (s *Service[D, T]) PermanentDelete(id int64) (bool, error) {
	ok, err := s.store.PermanentDelete(id)
	if err != nil {
		return false, s.storeFailure("permanent delete", id, err)
	}
	if ok {
		s.logger.Info("entity permanently deleted", "entity", s.name, "id", id)
	}
	return ok, nil
}

// storeFailure passes service-level errors through untouched and wraps
// anything else as a persistence failure, keeping the cause for the logs.
func (s *Service[D, T]) storeFailure(operation string, id int64, err error) error {
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr
	}
	s.logger.Error("store operation failed",
		"entity", s.name,
		"operation", operation,
		"id", id,
		"error", err)
	return internal.NewPersistenceError(s.name+" "+operation, err)
}
