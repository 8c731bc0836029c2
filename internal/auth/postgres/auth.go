package postgres

import (
	"errors"

	"github.com/dcastaneda/security-admin/internal/auth"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

func (r *Repository) GetLoginByUsername(username string) (*datamodel.WorkerLogin, error) {
	var login datamodel.WorkerLogin
	err := r.db.Where("username = ?", username).First(&login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}

// GetRolIDsForWorker walks worker -> user -> rol assignments, skipping
// soft-deleted users and assignments.
func (r *Repository) GetRolIDsForWorker(workerID int64) ([]int64, error) {
	query := `SELECT ru.rol_id
	          FROM rol_users ru
	          JOIN users u ON u.id = ru.user_id
	          WHERE u.worker_id = ?
	            AND u.delete_at IS NULL
	            AND ru.delete_at IS NULL`

	rows, err := r.db.Raw(query, workerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rolIDs []int64
	for rows.Next() {
		var rolID int64
		if err := rows.Scan(&rolID); err != nil {
			return nil, err
		}
		rolIDs = append(rolIDs, rolID)
	}
	return rolIDs, rows.Err()
}
