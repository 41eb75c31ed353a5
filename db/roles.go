package db

import (
	"context"
	"fmt"

	"tendercrm/models"
)

func (s *Storage) CreateRole(ctx context.Context, r *models.Role) error {
	query := `
        INSERT INTO roles (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, r.Name, r.Description).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return translateErr(err)
}

func (s *Storage) GetRole(ctx context.Context, id int) (*models.Role, error) {
	r := &models.Role{}
	query := `SELECT * FROM roles WHERE id=$1`
	if err := s.db.GetContext(ctx, r, query, id); err != nil {
		return nil, translateErr(err)
	}
	return r, nil
}

func (s *Storage) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles := []models.Role{}
	query := `SELECT * FROM roles ORDER BY name ASC`
	if err := s.db.SelectContext(ctx, &roles, query); err != nil {
		return nil, translateErr(err)
	}
	return roles, nil
}

func (s *Storage) UpdateRole(ctx context.Context, r *models.Role) error {
	query := `
        UPDATE roles
        SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query, r.Name, r.Description, r.ID).Scan(&r.UpdatedAt)
	return translateErr(err)
}

// DeleteRole удаляет роль внутри транзакции: сначала guard-проверка,
// что на роль не назначен ни один пользователь.
func (s *Storage) DeleteRole(ctx context.Context, id int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM users WHERE role_id=$1`, id); err != nil {
		return translateErr(err)
	}
	if count > 0 {
		return &ConflictError{
			Message: fmt.Sprintf("role has %d assigned users", count),
			Count:   count,
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM roles WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
