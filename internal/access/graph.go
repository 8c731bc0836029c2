package access

import (
	"log/slog"
	"sort"

	"github.com/dcastaneda/security-admin/internal/core/datamodel"
)

// FormModuleQueryAPI is the bidirectional traversal of the form-module
// association the graph needs; rows arrive with their Form or Module
// preloaded.
type FormModuleQueryAPI interface {
	GetByModuleID(moduleID int64) ([]*datamodel.FormModule, error)
	GetByFormID(formID int64) ([]*datamodel.FormModule, error)
}

// Capabilities is a resolved four-flag set.
type Capabilities struct {
	CanRead   bool `json:"can_read"`
	CanCreate bool `json:"can_create"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

func (c Capabilities) merge(p *datamodel.Permission) Capabilities {
	if p == nil {
		return c
	}
	return Capabilities{
		CanRead:   c.CanRead || p.CanRead,
		CanCreate: c.CanCreate || p.CanCreate,
		CanUpdate: c.CanUpdate || p.CanUpdate,
		CanDelete: c.CanDelete || p.CanDelete,
	}
}

// Has reports one capability flag by operation name.
func (c Capabilities) Has(operation string) bool {
	switch operation {
	case "read":
		return c.CanRead
	case "create":
		return c.CanCreate
	case "update":
		return c.CanUpdate
	case "delete":
		return c.CanDelete
	}
	return false
}

// PermissionView is one active grant of a rol, flattened for callers.
type PermissionView struct {
	ID           int64        `json:"id"`
	FormID       int64        `json:"form_id"`
	FormName     string       `json:"form_name"`
	FormCode     string       `json:"form_code"`
	PermissionID int64        `json:"permission_id"`
	Capabilities Capabilities `json:"capabilities"`
}

type MenuForm struct {
	FormID       int64        `json:"form_id"`
	Name         string       `json:"name"`
	Code         string       `json:"code"`
	Capabilities Capabilities `json:"capabilities"`
}

type MenuModule struct {
	ModuleID int64      `json:"module_id"`
	Code     string     `json:"code"`
	Forms    []MenuForm `json:"forms"`
}

// PermissionGraph answers "what may rol R do on form F" and "what can rol R
// see" from the three associative sets. A rol with no grants resolves to an
// empty access set; that is a legitimate terminal state, not an error.
type PermissionGraph struct {
	grants      RolFormPermissionStoreAPI
	formModules FormModuleQueryAPI
	rolUsers    RolUserStoreAPI
	logger      *slog.Logger
}

func NewPermissionGraph(grants RolFormPermissionStoreAPI, formModules FormModuleQueryAPI, rolUsers RolUserStoreAPI, logger *slog.Logger) *PermissionGraph {
	return &PermissionGraph{
		grants:      grants,
		formModules: formModules,
		rolUsers:    rolUsers,
		logger:      logger,
	}
}

// PermissionsByRol returns every active grant of the rol, each carrying the
// form it applies to and the capability flags of its permission row.
func (g *PermissionGraph) PermissionsByRol(rolID int64) ([]PermissionView, error) {
	grants, err := g.grants.GetByRolID(rolID)
	if err != nil {
		g.logger.Error("failed to load grants for rol", "rol_id", rolID, "error", err)
		return nil, err
	}

	views := make([]PermissionView, 0, len(grants))
	for _, grant := range grants {
		view := PermissionView{
			ID:           grant.ID,
			FormID:       grant.FormID,
			PermissionID: grant.PermissionID,
			Capabilities: Capabilities{}.merge(grant.Permission),
		}
		if grant.Form != nil {
			view.FormName = grant.Form.Name
			view.FormCode = grant.Form.Code
		}
		views = append(views, view)
	}
	return views, nil
}

// EffectiveAccess resolves what the rol may do on one form. Duplicate
// (rol, form) grants combine with a logical OR per capability.
func (g *PermissionGraph) EffectiveAccess(rolID, formID int64) (Capabilities, error) {
	grants, err := g.grants.GetByRolID(rolID)
	if err != nil {
		g.logger.Error("failed to resolve access", "rol_id", rolID, "form_id", formID, "error", err)
		return Capabilities{}, err
	}

	var caps Capabilities
	for _, grant := range grants {
		if grant.FormID == formID {
			caps = caps.merge(grant.Permission)
		}
	}
	return caps, nil
}

// EffectiveAccessForRols folds EffectiveAccess over several rols, used when
// a user holds more than one.
func (g *PermissionGraph) EffectiveAccessForRols(rolIDs []int64, formID int64) (Capabilities, error) {
	var caps Capabilities
	for _, rolID := range rolIDs {
		rolCaps, err := g.EffectiveAccess(rolID, formID)
		if err != nil {
			return Capabilities{}, err
		}
		caps = Capabilities{
			CanRead:   caps.CanRead || rolCaps.CanRead,
			CanCreate: caps.CanCreate || rolCaps.CanCreate,
			CanUpdate: caps.CanUpdate || rolCaps.CanUpdate,
			CanDelete: caps.CanDelete || rolCaps.CanDelete,
		}
	}
	return caps, nil
}

// FormsForModule lists the forms bound into a module.
func (g *PermissionGraph) FormsForModule(moduleID int64) ([]*datamodel.Form, error) {
	bindings, err := g.formModules.GetByModuleID(moduleID)
	if err != nil {
		return nil, err
	}

	forms := make([]*datamodel.Form, 0, len(bindings))
	for _, b := range bindings {
		if b.Form != nil {
			forms = append(forms, b.Form)
		}
	}
	return forms, nil
}

// ModulesForForm lists the modules a form is bound into.
func (g *PermissionGraph) ModulesForForm(formID int64) ([]*datamodel.Module, error) {
	bindings, err := g.formModules.GetByFormID(formID)
	if err != nil {
		return nil, err
	}

	modules := make([]*datamodel.Module, 0, len(bindings))
	for _, b := range bindings {
		if b.Module != nil {
			modules = append(modules, b.Module)
		}
	}
	return modules, nil
}

// EffectiveAccessByCode resolves the combined capabilities of a set of rols
// on the form named by code, used by the route guards.
func (g *PermissionGraph) EffectiveAccessByCode(rolIDs []int64, formCode string) (Capabilities, error) {
	var caps Capabilities
	for _, rolID := range rolIDs {
		grants, err := g.grants.GetByRolID(rolID)
		if err != nil {
			return Capabilities{}, err
		}
		for _, grant := range grants {
			if grant.Form != nil && grant.Form.Code == formCode {
				caps = caps.merge(grant.Permission)
			}
		}
	}
	return caps, nil
}

// RolsForUser returns the active rol assignments of a user.
func (g *PermissionGraph) RolsForUser(userID int64) ([]int64, error) {
	assignments, err := g.rolUsers.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	rolIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		rolIDs = append(rolIDs, a.RolID)
	}
	return rolIDs, nil
}

// ResolveMenu builds the two-level navigation tree for a rol: active
// modules with the active forms the rol can read, capabilities OR-combined
// across duplicate grants. Forms the rol cannot read never appear.
func (g *PermissionGraph) ResolveMenu(rolID int64) ([]MenuModule, error) {
	grants, err := g.grants.GetByRolID(rolID)
	if err != nil {
		g.logger.Error("failed to resolve menu", "rol_id", rolID, "error", err)
		return nil, err
	}
	return g.buildMenu(grants)
}

// ResolveMenuForRols merges the menus of several rols, for users holding
// more than one.
func (g *PermissionGraph) ResolveMenuForRols(rolIDs []int64) ([]MenuModule, error) {
	var grants []*datamodel.RolFormPermission
	for _, rolID := range rolIDs {
		rolGrants, err := g.grants.GetByRolID(rolID)
		if err != nil {
			g.logger.Error("failed to resolve menu", "rol_id", rolID, "error", err)
			return nil, err
		}
		grants = append(grants, rolGrants...)
	}
	return g.buildMenu(grants)
}

func (g *PermissionGraph) buildMenu(grants []*datamodel.RolFormPermission) ([]MenuModule, error) {
	type formEntry struct {
		form *datamodel.Form
		caps Capabilities
	}
	byForm := make(map[int64]*formEntry)
	for _, grant := range grants {
		if grant.Form == nil || !grant.Form.Active {
			continue
		}
		entry, ok := byForm[grant.FormID]
		if !ok {
			entry = &formEntry{form: grant.Form}
			byForm[grant.FormID] = entry
		}
		entry.caps = entry.caps.merge(grant.Permission)
	}

	modules := make(map[int64]*MenuModule)
	for formID, entry := range byForm {
		if !entry.caps.CanRead {
			continue
		}

		bindings, err := g.formModules.GetByFormID(formID)
		if err != nil {
			return nil, err
		}
		for _, b := range bindings {
			if b.Module == nil || !b.Module.Active {
				continue
			}
			mod, ok := modules[b.ModuleID]
			if !ok {
				mod = &MenuModule{ModuleID: b.ModuleID, Code: b.Module.Code}
				modules[b.ModuleID] = mod
			}
			mod.Forms = append(mod.Forms, MenuForm{
				FormID:       entry.form.ID,
				Name:         entry.form.Name,
				Code:         entry.form.Code,
				Capabilities: entry.caps,
			})
		}
	}

	menu := make([]MenuModule, 0, len(modules))
	for _, mod := range modules {
		sort.Slice(mod.Forms, func(i, j int) bool {
			return mod.Forms[i].FormID < mod.Forms[j].FormID
		})
		menu = append(menu, *mod)
	}
	sort.Slice(menu, func(i, j int) bool {
		return menu[i].ModuleID < menu[j].ModuleID
	})
	return menu, nil
}
