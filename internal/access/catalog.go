package access

// Canonical form codes for the administration screens. Route guards and the
// seeder agree on these values.
const (
	FormUsers              = "security.users"
	FormWorkers            = "security.workers"
	FormWorkerLogins       = "security.worker_logins"
	FormRols               = "security.rols"
	FormForms              = "security.forms"
	FormModules            = "security.modules"
	FormPermissions        = "security.permissions"
	FormFormModules        = "security.form_modules"
	FormRolUsers           = "security.rol_users"
	FormRolFormPermissions = "security.rol_form_permissions"
)

// Operations understood by Capabilities.Has.
const (
	OpRead   = "read"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)
