package entity

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dcastaneda/security-admin/internal/transport"
	"github.com/dcastaneda/security-admin/pkg/logger"
	"github.com/go-chi/chi"
)

// ServiceAPI is the operation set the HTTP shell needs from a service.
// *Service[D, T] satisfies it for every entity.
type ServiceAPI[D Identifiable] interface {
	Create(dto D) (D, error)
	GetAll() ([]D, error)
	GetByID(id int64) (D, error)
	Update(dto D) (bool, error)
	Delete(id int64) (bool, error)
	PermanentDelete(id int64) (bool, error)
}

// Handler exposes one entity's CRUD over HTTP. Entities needing extra
// endpoints mount this and add their own routes beside it.
type Handler[D Identifiable] struct {
	*transport.BaseHandler
	name    string
	service ServiceAPI[D]
}

func NewHandler[D Identifiable](name string, service ServiceAPI[D]) *Handler[D] {
	return &Handler[D]{
		BaseHandler: transport.NewBaseHandler(logger.Default()),
		name:        name,
		service:     service,
	}
}

// Mount registers the CRUD routes on a subrouter.
func (h *Handler[D]) Mount(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Delete("/{id}/permanent", h.PermanentDelete)
}

// MountGuarded registers the CRUD routes wrapped with a per-operation guard,
// typically a permission check built from the caller's form code.
func (h *Handler[D]) MountGuarded(r chi.Router, guard func(operation string) func(http.Handler) http.Handler) {
	r.With(guard("create")).Post("/", h.Create)
	r.With(guard("read")).Get("/", h.GetAll)
	r.With(guard("read")).Get("/{id}", h.GetByID)
	r.With(guard("update")).Put("/{id}", h.Update)
	r.With(guard("delete")).Delete("/{id}", h.Delete)
	r.With(guard("delete")).Delete("/{id}/permanent", h.PermanentDelete)
}

func (h *Handler[D]) Create(w http.ResponseWriter, r *http.Request) {
	var dto D
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid request body", "entity", h.name, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler[D]) GetAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler[D]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler[D]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var dto D
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid request body", "entity", h.name, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.EntityID() != id {
		h.WriteError(w, http.StatusBadRequest, "body id does not match path id")
		return
	}

	updated, err := h.service.Update(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if !updated {
		h.WriteError(w, http.StatusNotFound, h.name+" not found")
		return
	}
	h.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *Handler[D]) Delete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.service.Delete)
}

func (h *Handler[D]) PermanentDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.service.PermanentDelete)
}

func (h *Handler[D]) delete(w http.ResponseWriter, r *http.Request, op func(int64) (bool, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := op(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if !deleted {
		h.WriteError(w, http.StatusNotFound, h.name+" not found")
		return
	}
	h.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *Handler[D]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.Logger.Error("invalid id", "entity", h.name, "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
