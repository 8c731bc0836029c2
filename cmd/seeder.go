package cmd

import (
	"fmt"
	"log"

	"github.com/dcastaneda/security-admin/internal/access"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the security catalog and an admin login",
	Long:  `Seed the security module, the administration forms, a full-access permission and an admin worker with an active login.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		gdb, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			clearTables(gdb)
		}

		moduleID := seedModule(gdb)
		formIDs := seedForms(gdb)
		bindForms(gdb, moduleID, formIDs)

		permissionID := seedFullPermission(gdb)
		rolID := seedAdminRol(gdb)
		grantAll(gdb, rolID, formIDs, permissionID)

		userID := seedAdminIdentity(gdb, cfg.Security.BCryptCost)
		assignRol(gdb, rolID, userID)

		fmt.Println("Seed complete: admin login ready with full access to the security module")
	},
}

func clearTables(gdb *gorm.DB) {
	tables := []string{
		"rol_form_permissions",
		"rol_users",
		"form_modules",
		"worker_logins",
		"permissions",
		"forms",
		"modules",
		"rols",
		"users",
		"workers",
	}
	for _, table := range tables {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}

func seedModule(gdb *gorm.DB) int64 {
	var id int64
	row := gdb.Raw("SELECT id FROM modules WHERE code = ?", "security").Row()
	if err := row.Scan(&id); err == nil {
		return id
	}

	if err := gdb.Exec(
		"INSERT INTO modules (code, active, create_at) VALUES (?, true, now())",
		"security",
	).Error; err != nil {
		log.Fatalf("failed to insert security module: %v", err)
	}
	if err := gdb.Raw("SELECT id FROM modules WHERE code = ?", "security").Row().Scan(&id); err != nil {
		log.Fatalf("module not found after insert: %v", err)
	}
	fmt.Println("Seeded security module")
	return id
}

func seedForms(gdb *gorm.DB) map[string]int64 {
	forms := []struct {
		Code string
		Name string
	}{
		{access.FormUsers, "Users"},
		{access.FormWorkers, "Workers"},
		{access.FormWorkerLogins, "Worker Logins"},
		{access.FormRols, "Rols"},
		{access.FormForms, "Forms"},
		{access.FormModules, "Modules"},
		{access.FormPermissions, "Permissions"},
		{access.FormFormModules, "Form Modules"},
		{access.FormRolUsers, "Rol Users"},
		{access.FormRolFormPermissions, "Rol Form Permissions"},
	}

	ids := make(map[string]int64, len(forms))
	for _, f := range forms {
		var id int64
		if err := gdb.Raw("SELECT id FROM forms WHERE code = ?", f.Code).Row().Scan(&id); err != nil {
			if err := gdb.Exec(
				"INSERT INTO forms (name, code, active, create_at) VALUES (?, ?, true, now())",
				f.Name, f.Code,
			).Error; err != nil {
				log.Fatalf("failed to insert form %s: %v", f.Code, err)
			}
			if err := gdb.Raw("SELECT id FROM forms WHERE code = ?", f.Code).Row().Scan(&id); err != nil {
				log.Fatalf("form not found after insert %s: %v", f.Code, err)
			}
			fmt.Printf("Seeded form: %s\n", f.Code)
		}
		ids[f.Code] = id
	}
	return ids
}

func bindForms(gdb *gorm.DB, moduleID int64, formIDs map[string]int64) {
	for code, formID := range formIDs {
		var exists int
		row := gdb.Raw(
			"SELECT 1 FROM form_modules WHERE module_id = ? AND form_id = ? AND delete_at IS NULL",
			moduleID, formID,
		).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}

		if err := gdb.Exec(
			"INSERT INTO form_modules (module_id, form_id, create_at) VALUES (?, ?, now())",
			moduleID, formID,
		).Error; err != nil {
			log.Fatalf("failed to bind form %s to security module: %v", code, err)
		}
	}
}

func seedFullPermission(gdb *gorm.DB) int64 {
	var id int64
	row := gdb.Raw(
		"SELECT id FROM permissions WHERE can_read AND can_create AND can_update AND can_delete LIMIT 1",
	).Row()
	if err := row.Scan(&id); err == nil {
		return id
	}

	if err := gdb.Exec(
		"INSERT INTO permissions (can_read, can_create, can_update, can_delete, create_at) VALUES (true, true, true, true, now())",
	).Error; err != nil {
		log.Fatalf("failed to insert full permission: %v", err)
	}
	if err := gdb.Raw(
		"SELECT id FROM permissions WHERE can_read AND can_create AND can_update AND can_delete LIMIT 1",
	).Row().Scan(&id); err != nil {
		log.Fatalf("permission not found after insert: %v", err)
	}
	fmt.Println("Seeded full-access permission")
	return id
}

func seedAdminRol(gdb *gorm.DB) int64 {
	var id int64
	row := gdb.Raw("SELECT id FROM rols WHERE name = ? AND delete_at IS NULL", "admin").Row()
	if err := row.Scan(&id); err == nil {
		return id
	}

	if err := gdb.Exec(
		"INSERT INTO rols (name, description, active, create_at) VALUES (?, ?, true, now())",
		"admin", "Full administrator",
	).Error; err != nil {
		log.Fatalf("failed to insert admin rol: %v", err)
	}
	if err := gdb.Raw("SELECT id FROM rols WHERE name = ? AND delete_at IS NULL", "admin").Row().Scan(&id); err != nil {
		log.Fatalf("admin rol not found after insert: %v", err)
	}
	fmt.Println("Seeded admin rol")
	return id
}

func grantAll(gdb *gorm.DB, rolID int64, formIDs map[string]int64, permissionID int64) {
	for code, formID := range formIDs {
		var exists int
		row := gdb.Raw(
			"SELECT 1 FROM rol_form_permissions WHERE rol_id = ? AND form_id = ? AND permission_id = ? AND delete_at IS NULL",
			rolID, formID, permissionID,
		).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}

		if err := gdb.Exec(
			"INSERT INTO rol_form_permissions (rol_id, form_id, permission_id, create_at) VALUES (?, ?, ?, now())",
			rolID, formID, permissionID,
		).Error; err != nil {
			log.Fatalf("failed to grant %s to admin rol: %v", code, err)
		}
	}
	fmt.Println("Granted full access on every form to the admin rol")
}

func seedAdminIdentity(gdb *gorm.DB, bcryptCost int) int64 {
	const (
		document = "ADMIN-0001"
		username = "admin"
		email    = "admin@mail.com"
	)

	var workerID int64
	if err := gdb.Raw(
		"SELECT id FROM workers WHERE identity_document = ? AND delete_at IS NULL", document,
	).Row().Scan(&workerID); err != nil {
		if err := gdb.Exec(
			"INSERT INTO workers (first_name, last_name, identity_document, create_at) VALUES (?, ?, ?, now())",
			"System", "Administrator", document,
		).Error; err != nil {
			log.Fatalf("failed to insert admin worker: %v", err)
		}
		if err := gdb.Raw(
			"SELECT id FROM workers WHERE identity_document = ? AND delete_at IS NULL", document,
		).Row().Scan(&workerID); err != nil {
			log.Fatalf("admin worker not found after insert: %v", err)
		}
		fmt.Println("Seeded admin worker")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	var exists int
	if err := gdb.Raw("SELECT 1 FROM worker_logins WHERE username = ?", username).Row().Scan(&exists); err != nil {
		if err := gdb.Exec(
			"INSERT INTO worker_logins (worker_id, username, password, status, create_at) VALUES (?, ?, ?, ?, now())",
			workerID, username, string(hash), "active",
		).Error; err != nil {
			log.Fatalf("failed to insert admin login: %v", err)
		}
		fmt.Println("Seeded admin login:", username)
	}

	var userID int64
	if err := gdb.Raw(
		"SELECT id FROM users WHERE email = ? AND delete_at IS NULL", email,
	).Row().Scan(&userID); err != nil {
		if err := gdb.Exec(
			"INSERT INTO users (name, email, password, worker_id, create_at) VALUES (?, ?, ?, ?, now())",
			"System Administrator", email, string(hash), workerID,
		).Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}
		if err := gdb.Raw(
			"SELECT id FROM users WHERE email = ? AND delete_at IS NULL", email,
		).Row().Scan(&userID); err != nil {
			log.Fatalf("admin user not found after insert: %v", err)
		}
		fmt.Println("Seeded admin user:", email)
	}

	return userID
}

func assignRol(gdb *gorm.DB, rolID, userID int64) {
	var exists int
	row := gdb.Raw(
		"SELECT 1 FROM rol_users WHERE rol_id = ? AND user_id = ? AND delete_at IS NULL",
		rolID, userID,
	).Row()
	if err := row.Scan(&exists); err == nil {
		return
	}

	if err := gdb.Exec(
		"INSERT INTO rol_users (rol_id, user_id, create_at) VALUES (?, ?, now())",
		rolID, userID,
	).Error; err != nil {
		log.Fatalf("failed to assign admin rol: %v", err)
	}
	fmt.Println("Assigned admin rol to admin user")
}
