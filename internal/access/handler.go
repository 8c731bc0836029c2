package access

import (
	"net/http"
	"strconv"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/transport"
	"github.com/dcastaneda/security-admin/pkg/logger"
	"github.com/go-chi/chi"
)

// GraphHandler exposes the cross-entity queries: permissions and menu by
// rol, and the module-form traversals.
type GraphHandler struct {
	*transport.BaseHandler
	graph *PermissionGraph
}

func NewGraphHandler(graph *PermissionGraph) *GraphHandler {
	return &GraphHandler{
		BaseHandler: transport.NewBaseHandler(logger.Default()),
		graph:       graph,
	}
}

func (h *GraphHandler) PermissionsByRol(w http.ResponseWriter, r *http.Request) {
	rolID, ok := h.pathID(w, r, "rolID")
	if !ok {
		return
	}

	views, err := h.graph.PermissionsByRol(rolID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, views)
}

func (h *GraphHandler) MenuByRol(w http.ResponseWriter, r *http.Request) {
	rolID, ok := h.pathID(w, r, "rolID")
	if !ok {
		return
	}

	menu, err := h.graph.ResolveMenu(rolID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, menu)
}

// MenuForCaller resolves the navigation tree for the authenticated caller,
// merged across every rol the caller holds.
func (h *GraphHandler) MenuForCaller(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	menu, err := h.graph.ResolveMenuForRols(user.RolIDs)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, menu)
}

func (h *GraphHandler) FormsForModule(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := h.pathID(w, r, "moduleID")
	if !ok {
		return
	}

	forms, err := h.graph.FormsForModule(moduleID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, forms)
}

func (h *GraphHandler) ModulesForForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.pathID(w, r, "formID")
	if !ok {
		return
	}

	modules, err := h.graph.ModulesForForm(formID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, modules)
}

func (h *GraphHandler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid "+param)
		return 0, false
	}
	return id, true
}
