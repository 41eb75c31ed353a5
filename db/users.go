package db

import (
	"context"

	"tendercrm/models"
)

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	query := `
        INSERT INTO users (username, password_hash, name, role, role_id, department, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		u.Username, u.PasswordHash, u.Name, u.Role, u.RoleID, u.Department, u.Status).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return translateErr(err)
}

func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	u := &models.User{}
	query := `SELECT * FROM users WHERE id=$1`
	if err := s.db.GetContext(ctx, u, query, id); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT * FROM users WHERE username=$1`
	if err := s.db.GetContext(ctx, u, query, username); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT * FROM users ORDER BY name ASC`
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, translateErr(err)
	}
	return users, nil
}

func (s *Storage) UpdateUser(ctx context.Context, u *models.User) error {
	query := `
        UPDATE users
        SET password_hash=$1, name=$2, role=$3, role_id=$4, department=$5, status=$6,
            last_login=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		u.PasswordHash, u.Name, u.Role, u.RoleID, u.Department, u.Status, u.LastLogin, u.ID).
		Scan(&u.UpdatedAt)
	return translateErr(err)
}

func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
