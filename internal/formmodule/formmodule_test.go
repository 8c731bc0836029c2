package formmodule_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/formmodule"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFormModuleService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FormModule Service Suite")
}

type MockFormModuleStore struct {
	bindings map[int64]*datamodel.FormModule
	nextID   int64
}

func NewMockFormModuleStore() *MockFormModuleStore {
	return &MockFormModuleStore{bindings: make(map[int64]*datamodel.FormModule), nextID: 1}
}

func (m *MockFormModuleStore) Create(e *datamodel.FormModule) error {
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.bindings[e.ID] = &copied
	return nil
}

func (m *MockFormModuleStore) GetAll() ([]*datamodel.FormModule, error) {
	var out []*datamodel.FormModule
	for _, b := range m.bindings {
		if b.DeleteAt == nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockFormModuleStore) GetByID(id int64) (*datamodel.FormModule, error) {
	b, ok := m.bindings[id]
	if !ok || b.DeleteAt != nil {
		return nil, nil
	}
	return b, nil
}

func (m *MockFormModuleStore) Update(e *datamodel.FormModule) (bool, error) {
	existing, ok := m.bindings[e.ID]
	if !ok || existing.DeleteAt != nil {
		return false, nil
	}
	existing.ModuleID = e.ModuleID
	existing.FormID = e.FormID
	return true, nil
}

func (m *MockFormModuleStore) Delete(id int64) (bool, error) {
	b, ok := m.bindings[id]
	if !ok || b.DeleteAt != nil {
		return false, nil
	}
	b.MarkDeleted(time.Now())
	return true, nil
}

func (m *MockFormModuleStore) PermanentDelete(id int64) (bool, error) {
	if _, ok := m.bindings[id]; !ok {
		return false, nil
	}
	delete(m.bindings, id)
	return true, nil
}

func (m *MockFormModuleStore) GetByModuleAndForm(moduleID, formID int64) (*datamodel.FormModule, error) {
	for _, b := range m.bindings {
		if b.DeleteAt == nil && b.ModuleID == moduleID && b.FormID == formID {
			return b, nil
		}
	}
	return nil, nil
}

var _ = Describe("FormModule Service", func() {
	var (
		store   *MockFormModuleStore
		service *entity.Service[formmodule.DTO, datamodel.FormModule]
	)

	BeforeEach(func() {
		store = NewMockFormModuleStore()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = formmodule.NewService(store, logger)
	})

	Describe("Create", func() {
		It("should bind a form into a module", func() {
			created, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
		})

		It("should reject binding the same pair twice", func() {
			_, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateAssignment))
		})

		It("should allow the same form in a different module", func() {
			_, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(formmodule.DTO{ModuleID: 2, FormID: 10})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should allow rebinding after the old binding was removed", func() {
			created, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Delete(created.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a zero module reference", func() {
			_, err := service.Create(formmodule.DTO{ModuleID: 0, FormID: 10})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a negative form reference", func() {
			_, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: -5})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("should keep the pair on the same record without conflict", func() {
			created, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())

			ok, err := service.Update(formmodule.DTO{ID: created.ID, ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("should reject moving onto an existing pair", func() {
			_, err := service.Create(formmodule.DTO{ModuleID: 1, FormID: 10})
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Create(formmodule.DTO{ModuleID: 2, FormID: 10})
			Expect(err).NotTo(HaveOccurred())

			ok, err := service.Update(formmodule.DTO{ID: second.ID, ModuleID: 1, FormID: 10})
			Expect(ok).To(BeFalse())
			appErr, isApp := internal.IsAppError(err)
			Expect(isApp).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateAssignment))
		})
	})
})
