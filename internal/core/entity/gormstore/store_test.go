package gormstore_test

import (
	"testing"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gorm Store Suite")
}

var _ = Describe("Gorm Store", func() {
	var db *gorm.DB

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&datamodel.Rol{}, &datamodel.Form{})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("soft-deletable entities", func() {
		var store *gormstore.Store[datamodel.Rol]

		BeforeEach(func() {
			store = gormstore.New[datamodel.Rol](db)
		})

		It("should create and read back a row", func() {
			rol := &datamodel.Rol{Name: "admin", Active: true}
			Expect(store.Create(rol)).To(Succeed())
			Expect(rol.ID).To(BeNumerically(">", 0))

			got, err := store.GetByID(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got.Name).To(Equal("admin"))
		})

		It("should return nil without error for a missing id", func() {
			got, err := store.GetByID(404)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("should hide soft-deleted rows from reads", func() {
			rol := &datamodel.Rol{Name: "auditor", Active: true}
			Expect(store.Create(rol)).To(Succeed())

			ok, err := store.Delete(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, err := store.GetByID(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())

			all, err := store.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("should report deleting an already-deleted row as false", func() {
			rol := &datamodel.Rol{Name: "temp", Active: true}
			Expect(store.Create(rol)).To(Succeed())

			ok, err := store.Delete(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = store.Delete(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should update mutable fields and keep the creation stamp", func() {
			rol := &datamodel.Rol{Name: "before", Active: true}
			Expect(store.Create(rol)).To(Succeed())
			createdAt := rol.CreateAt

			ok, err := store.Update(&datamodel.Rol{ID: rol.ID, Name: "after", Active: false})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			got, err := store.GetByID(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("after"))
			Expect(got.Active).To(BeFalse())
			Expect(got.CreateAt.Unix()).To(Equal(createdAt.Unix()))
		})

		It("should report updating a missing row as false", func() {
			ok, err := store.Update(&datamodel.Rol{ID: 9999, Name: "ghost"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should remove soft-deleted rows physically on permanent delete", func() {
			rol := &datamodel.Rol{Name: "purged", Active: true}
			Expect(store.Create(rol)).To(Succeed())

			_, err := store.Delete(rol.ID)
			Expect(err).NotTo(HaveOccurred())

			ok, err := store.PermanentDelete(rol.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			var count int64
			Expect(db.Model(&datamodel.Rol{}).Where("id = ?", rol.ID).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})

	Describe("entities without the soft-delete lifecycle", func() {
		var store *gormstore.Store[datamodel.Form]

		BeforeEach(func() {
			store = gormstore.New[datamodel.Form](db)
		})

		It("should remove the row physically on delete", func() {
			form := &datamodel.Form{Name: "Users", Code: "security.users", Active: true}
			Expect(store.Create(form)).To(Succeed())

			ok, err := store.Delete(form.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			var count int64
			Expect(db.Model(&datamodel.Form{}).Where("id = ?", form.ID).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("should map a unique violation onto a conflict error", func() {
			first := &datamodel.Form{Name: "Users", Code: "security.users", Active: true}
			Expect(store.Create(first)).To(Succeed())

			err := store.Create(&datamodel.Form{Name: "Copy", Code: "security.users", Active: true})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateKey))
		})
	})
})
