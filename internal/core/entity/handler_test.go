package entity_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/dcastaneda/security-admin/internal/core/entity"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Entity Handler", func() {
	var (
		store   *MockNoteStore
		service *entity.Service[noteDTO, note]
		router  *chi.Mux
	)

	BeforeEach(func() {
		store = NewMockNoteStore()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = entity.NewService[noteDTO, note]("note", store, noteMapper{}, logger)

		handler := entity.NewHandler[noteDTO]("note", service)
		router = chi.NewRouter()
		router.Route("/notes", func(r chi.Router) {
			handler.Mount(r)
		})
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should create an entity and answer 201 with the generated id", func() {
		w := do(http.MethodPost, "/notes/", `{"ID":0,"Title":"first"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created noteDTO
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))
	})

	It("should answer 400 for a malformed body", func() {
		w := do(http.MethodPost, "/notes/", `{not json`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 400 with field details for a validation failure", func() {
		w := do(http.MethodPost, "/notes/", `{"Title":""}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("title"))
	})

	It("should read an entity back by id", func() {
		w := do(http.MethodPost, "/notes/", `{"Title":"readable"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		var created noteDTO
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

		w = do(http.MethodGet, "/notes/1", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var got noteDTO
		Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
		Expect(got.Title).To(Equal("readable"))
	})

	It("should answer 404 for a missing id", func() {
		w := do(http.MethodGet, "/notes/42", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 400 for a non-numeric id", func() {
		w := do(http.MethodGet, "/notes/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should list all entities", func() {
		do(http.MethodPost, "/notes/", `{"Title":"one"}`)
		do(http.MethodPost, "/notes/", `{"Title":"two"}`)

		w := do(http.MethodGet, "/notes/", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var all []noteDTO
		Expect(json.NewDecoder(w.Body).Decode(&all)).To(Succeed())
		Expect(all).To(HaveLen(2))
	})

	It("should update an entity and answer 204", func() {
		do(http.MethodPost, "/notes/", `{"Title":"before"}`)

		w := do(http.MethodPut, "/notes/1", `{"ID":1,"Title":"after"}`)
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(store.notes[1].Title).To(Equal("after"))
	})

	It("should answer 400 when the body id does not match the path id", func() {
		do(http.MethodPost, "/notes/", `{"Title":"mismatch"}`)

		w := do(http.MethodPut, "/notes/1", `{"ID":2,"Title":"other"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 404 when updating a missing entity", func() {
		w := do(http.MethodPut, "/notes/9", `{"ID":9,"Title":"ghost"}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should delete an entity and answer 204", func() {
		do(http.MethodPost, "/notes/", `{"Title":"ephemeral"}`)

		w := do(http.MethodDelete, "/notes/1", "")
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = do(http.MethodGet, "/notes/1", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 404 when deleting a missing entity", func() {
		w := do(http.MethodDelete, "/notes/77", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should remove the row physically on the permanent route", func() {
		do(http.MethodPost, "/notes/", `{"Title":"purged"}`)

		w := do(http.MethodDelete, "/notes/1/permanent", "")
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(store.notes).NotTo(HaveKey(int64(1)))
	})
})
