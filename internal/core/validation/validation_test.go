package validation_test

import (
	"testing"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/validation"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("Validator Builder", func() {
	Describe("Required", func() {
		It("should pass a populated string", func() {
			v := validation.NewValidator()
			v.Field("name", "admin").Required()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject an empty string", func() {
			v := validation.NewValidator()
			v.Field("name", "").Required()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should reject a whitespace-only string", func() {
			v := validation.NewValidator()
			v.Field("name", "   ").Required()
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(err.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("Reference", func() {
		It("should pass a positive id", func() {
			v := validation.NewValidator()
			v.Field("rol_id", int64(7)).Reference()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject zero", func() {
			v := validation.NewValidator()
			v.Field("rol_id", int64(0)).Reference()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should reject negative ids", func() {
			v := validation.NewValidator()
			v.Field("rol_id", int64(-3)).Reference()
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("MaxLength", func() {
		It("should reject a string over the limit", func() {
			v := validation.NewValidator()
			v.Field("name", "abcdef").MaxLength(5)
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should pass a string at the limit", func() {
			v := validation.NewValidator()
			v.Field("name", "abcde").MaxLength(5)
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("Email", func() {
		It("should pass a plausible address", func() {
			v := validation.NewValidator()
			v.Field("email", "admin@mail.com").Email()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject an address without a local part", func() {
			v := validation.NewValidator()
			v.Field("email", "@mail.com").Email()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should skip the shape check on an empty value", func() {
			v := validation.NewValidator()
			v.Field("email", "").Email()
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("aggregation", func() {
		It("should collect every failing field into one error", func() {
			v := validation.NewValidator()
			v.Field("name", "").Required()
			v.Field("rol_id", int64(0)).Reference()
			err := v.Validate()
			Expect(err).NotTo(BeNil())

			details, ok := err.Details.(internal.FieldErrors)
			Expect(ok).To(BeTrue())
			Expect(details.Errors).To(HaveLen(2))
		})
	})
})
