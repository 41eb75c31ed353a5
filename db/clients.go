package db

import (
	"context"

	"tendercrm/models"
)

func (s *Storage) CreateClient(ctx context.Context, c *models.Client) error {
	query := `
        INSERT INTO clients (name, contact_person, email, phone, address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.ContactPerson, c.Email, c.Phone, c.Address).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateErr(err)
}

func (s *Storage) GetClient(ctx context.Context, id int) (*models.Client, error) {
	c := &models.Client{}
	query := `SELECT * FROM clients WHERE id=$1`
	if err := s.db.GetContext(ctx, c, query, id); err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (s *Storage) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	query := `SELECT * FROM clients ORDER BY name ASC`
	if err := s.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, translateErr(err)
	}
	return clients, nil
}

func (s *Storage) UpdateClient(ctx context.Context, c *models.Client) error {
	query := `
        UPDATE clients
        SET name=$1, contact_person=$2, email=$3, phone=$4, address=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.ContactPerson, c.Email, c.Phone, c.Address, c.ID).
		Scan(&c.UpdatedAt)
	return translateErr(err)
}

func (s *Storage) DeleteClient(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
