// Package entity is the generic CRUD core every concrete entity plugs into:
// a Store gateway over one persisted type, a Mapper owning validation and
// DTO translation, and a Service tying both together with the shared
// create/read/update/delete semantics.
package entity

// Identifiable exposes the surrogate id of a DTO so the generic service can
// key updates and existence checks.
type Identifiable interface {
	EntityID() int64
}

// Store is the persistence gateway for one entity type. GetByID returns
// (nil, nil) for a missing row; only transport or connectivity failures
// produce errors. Update, Delete and PermanentDelete report "row did not
// exist" as false, not as an error.
type Store[T any] interface {
	Create(e *T) error
	GetAll() ([]*T, error)
	GetByID(id int64) (*T, error)
	Update(e *T) (bool, error)
	Delete(id int64) (bool, error)
	PermanentDelete(id int64) (bool, error)
}

// Mapper owns the per-entity policy the generic service cannot know:
// field validation and the total, side-effect-free translation between the
// DTO and the persisted shape.
type Mapper[D Identifiable, T any] interface {
	ValidateDTO(dto D) error
	ToEntity(dto D) *T
	ToDTO(e *T) D
}

// UniqueRule is an optional probe a mapper can additionally satisfy when
// the entity carries a uniqueness constraint spanning more than a column
// check. excludeID skips the record's own row on update.
type UniqueRule[D Identifiable] interface {
	CheckUnique(dto D, excludeID int64) error
}

// MapList applies ToDTO element-wise, preserving order.
func MapList[D Identifiable, T any](m Mapper[D, T], entities []*T) []D {
	dtos := make([]D, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, m.ToDTO(e))
	}
	return dtos
}
