package worker_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity"
	"github.com/dcastaneda/security-admin/internal/worker"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWorkerService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Worker Service Suite")
}

// MockLoginStore implements worker.LoginStoreAPI in memory. Logins carry no
// soft-delete lifecycle, so Delete removes the row.
type MockLoginStore struct {
	logins map[int64]*datamodel.WorkerLogin
	nextID int64
}

func NewMockLoginStore() *MockLoginStore {
	return &MockLoginStore{logins: make(map[int64]*datamodel.WorkerLogin), nextID: 1}
}

func (m *MockLoginStore) Create(e *datamodel.WorkerLogin) error {
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.logins[e.ID] = &copied
	return nil
}

func (m *MockLoginStore) GetAll() ([]*datamodel.WorkerLogin, error) {
	var out []*datamodel.WorkerLogin
	for _, l := range m.logins {
		out = append(out, l)
	}
	return out, nil
}

func (m *MockLoginStore) GetByID(id int64) (*datamodel.WorkerLogin, error) {
	l, ok := m.logins[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (m *MockLoginStore) Update(e *datamodel.WorkerLogin) (bool, error) {
	existing, ok := m.logins[e.ID]
	if !ok {
		return false, nil
	}
	existing.WorkerID = e.WorkerID
	existing.Username = e.Username
	existing.Status = e.Status
	if e.Password != "" {
		existing.Password = e.Password
	}
	return true, nil
}

func (m *MockLoginStore) Delete(id int64) (bool, error) {
	return m.PermanentDelete(id)
}

func (m *MockLoginStore) PermanentDelete(id int64) (bool, error) {
	if _, ok := m.logins[id]; !ok {
		return false, nil
	}
	delete(m.logins, id)
	return true, nil
}

func (m *MockLoginStore) ExistsUsername(username string, excludeID int64) (bool, error) {
	for _, l := range m.logins {
		if l.Username == username && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockLoginStore) GetByUsername(username string) (*datamodel.WorkerLogin, error) {
	for _, l := range m.logins {
		if l.Username == username {
			return l, nil
		}
	}
	return nil, nil
}

var _ = Describe("Worker Login Service", func() {
	var (
		store   *MockLoginStore
		service *entity.Service[worker.LoginDTO, datamodel.WorkerLogin]
	)

	BeforeEach(func() {
		store = NewMockLoginStore()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = worker.NewLoginService(store, logger)
	})

	Describe("Create", func() {
		It("should default the status to active", func() {
			created, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "jdoe", Password: "hashed"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(datamodel.LoginStatusActive))
		})

		It("should redact the password in the response", func() {
			created, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "jdoe", Password: "hashed"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Password).To(BeEmpty())
			Expect(store.logins[created.ID].Password).To(Equal("hashed"))
		})

		It("should reject a duplicate username", func() {
			_, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "jdoe"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(worker.LoginDTO{WorkerID: 2, Username: "jdoe"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateUsername))
		})

		It("should reject an empty username", func() {
			_, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "  "})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a missing worker reference", func() {
			_, err := service.Create(worker.LoginDTO{Username: "jdoe"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("should deactivate a login through its status", func() {
			created, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "jdoe"})
			Expect(err).NotTo(HaveOccurred())

			ok, err := service.Update(worker.LoginDTO{
				ID:       created.ID,
				WorkerID: 1,
				Username: "jdoe",
				Status:   datamodel.LoginStatusInactive,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, err := service.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(datamodel.LoginStatusInactive))
		})
	})

	Describe("Delete", func() {
		It("should remove the credential record physically", func() {
			created, err := service.Create(worker.LoginDTO{WorkerID: 1, Username: "jdoe"})
			Expect(err).NotTo(HaveOccurred())

			ok, err := service.Delete(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(store.logins).NotTo(HaveKey(created.ID))
		})
	})
})
