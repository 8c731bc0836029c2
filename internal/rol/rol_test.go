package rol_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/rol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRolService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rol Service Suite")
}

type MockRolStore struct {
	rols   map[int64]*datamodel.Rol
	nextID int64
}

func NewMockRolStore() *MockRolStore {
	return &MockRolStore{rols: make(map[int64]*datamodel.Rol), nextID: 1}
}

func (m *MockRolStore) Create(e *datamodel.Rol) error {
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.rols[e.ID] = &copied
	return nil
}

func (m *MockRolStore) GetAll() ([]*datamodel.Rol, error) {
	var out []*datamodel.Rol
	for _, r := range m.rols {
		if r.DeleteAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRolStore) GetByID(id int64) (*datamodel.Rol, error) {
	r, ok := m.rols[id]
	if !ok || r.DeleteAt != nil {
		return nil, nil
	}
	return r, nil
}

func (m *MockRolStore) Update(e *datamodel.Rol) (bool, error) {
	existing, ok := m.rols[e.ID]
	if !ok || existing.DeleteAt != nil {
		return false, nil
	}
	existing.Name = e.Name
	existing.Description = e.Description
	existing.Active = e.Active
	return true, nil
}

func (m *MockRolStore) Delete(id int64) (bool, error) {
	r, ok := m.rols[id]
	if !ok || r.DeleteAt != nil {
		return false, nil
	}
	r.MarkDeleted(time.Now())
	return true, nil
}

func (m *MockRolStore) PermanentDelete(id int64) (bool, error) {
	if _, ok := m.rols[id]; !ok {
		return false, nil
	}
	delete(m.rols, id)
	return true, nil
}

var _ = Describe("Rol Service", func() {
	var (
		store   *MockRolStore
		service *entity.Service[rol.DTO, datamodel.Rol]
	)

	BeforeEach(func() {
		store = NewMockRolStore()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = rol.NewService(store, logger)
	})

	It("should trim the name on create", func() {
		created, err := service.Create(rol.DTO{Name: "  admin  ", Active: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.Name).To(Equal("admin"))
	})

	It("should reject an empty name", func() {
		_, err := service.Create(rol.DTO{Name: "", Active: true})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
	})

	It("should reject a name over 100 characters", func() {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		_, err := service.Create(rol.DTO{Name: string(long), Active: true})
		Expect(err).To(HaveOccurred())
	})

	It("should soft-delete a rol and hide it from reads", func() {
		created, err := service.Create(rol.DTO{Name: "auditor", Active: true})
		Expect(err).NotTo(HaveOccurred())

		ok, err := service.Delete(created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		all, err := service.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(BeEmpty())
	})
})
