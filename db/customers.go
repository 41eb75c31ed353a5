package db

import (
	"context"
	"fmt"

	"tendercrm/models"
)

func (s *Storage) CreateCustomer(ctx context.Context, c *models.Customer, actorID int) error {
	query := `
        INSERT INTO customers (name, company, contact_person, email, phone, category, status, last_contact)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Company, c.ContactPerson, c.Email, c.Phone, c.Category, c.Status, c.LastContact).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCustomerCreated,
		Description:  fmt.Sprintf("Customer %q created", c.Name),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	c := &models.Customer{}
	query := `SELECT * FROM customers WHERE id=$1`
	if err := s.db.GetContext(ctx, c, query, id); err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (s *Storage) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	query := `SELECT * FROM customers ORDER BY name ASC`
	if err := s.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, translateErr(err)
	}
	return customers, nil
}

func (s *Storage) UpdateCustomer(ctx context.Context, c *models.Customer, actorID int) error {
	query := `
        UPDATE customers
        SET name=$1, company=$2, contact_person=$3, email=$4, phone=$5, category=$6,
            status=$7, last_contact=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Company, c.ContactPerson, c.Email, c.Phone, c.Category, c.Status, c.LastContact, c.ID).
		Scan(&c.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCustomerUpdated,
		Description:  fmt.Sprintf("Customer %q updated", c.Name),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) DeleteCustomer(ctx context.Context, id, actorID int) error {
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCustomerDeleted,
		Description:  fmt.Sprintf("Customer %q deleted", c.Name),
		UserID:       actorID,
	})
	return nil
}
