// Package gormstore is the gorm-backed implementation of the generic
// entity.Store contract. One Store works for every entity; soft-delete
// behavior follows from whether the entity implements
// datamodel.SoftDeletable.
package gormstore

import (
	"errors"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"gorm.io/gorm"
)

type Store[T any] struct {
	db         *gorm.DB
	softDelete bool
}

// New builds a store for T. The gorm handle must be opened with
// TranslateError so unique-constraint violations arrive as
// gorm.ErrDuplicatedKey regardless of driver.
func New[T any](db *gorm.DB) *Store[T] {
	var e T
	_, soft := any(&e).(datamodel.SoftDeletable)
	return &Store[T]{db: db, softDelete: soft}
}

// DB exposes the handle for per-entity query extensions.
func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

func (s *Store[T]) Create(e *T) error {
	if err := s.db.Create(e).Error; err != nil {
		return translate(err)
	}
	return nil
}

// scope excludes soft-deleted rows for entities that have the lifecycle.
func (s *Store[T]) scope() *gorm.DB {
	q := s.db.Model(new(T))
	if s.softDelete {
		q = q.Where("delete_at IS NULL")
	}
	return q
}

func (s *Store[T]) GetAll() ([]*T, error) {
	var out []*T
	if err := s.scope().Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T]) GetByID(id int64) (*T, error) {
	var e T
	err := s.scope().Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Update replaces every mutable field of the row keyed by the entity's id.
// The id and lifecycle stamps are never overwritten.
func (s *Store[T]) Update(e *T) (bool, error) {
	res := s.db.Model(e).
		Select("*").
		Omit("id", "create_at", "delete_at").
		Updates(e)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete sets the deletion stamp. Entities without the soft-delete
// lifecycle fall through to physical removal.
func (s *Store[T]) Delete(id int64) (bool, error) {
	if !s.softDelete {
		return s.PermanentDelete(id)
	}

	res := s.db.Model(new(T)).
		Where("id = ? AND delete_at IS NULL", id).
		Update("delete_at", time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// PermanentDelete removes the row, soft-deleted or not. Irreversible.
func (s *Store[T]) PermanentDelete(id int64) (bool, error) {
	var e T
	res := s.db.Where("id = ?", id).Delete(&e)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.NewConflictError("duplicate value for a unique field", internal.ErrCodeDuplicateKey).
			WithCause(err)
	}
	return err
}
