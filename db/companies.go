package db

import (
	"context"
	"fmt"

	"tendercrm/models"
)

func (s *Storage) CreateCompany(ctx context.Context, c *models.Company, actorID int) error {
	query := `
        INSERT INTO companies (name, cin, pan, gst, contact_person, email, phone, address, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.CIN, c.PAN, c.GST, c.ContactPerson, c.Email, c.Phone, c.Address, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCompanyCreated,
		Description:  fmt.Sprintf("Company %q created", c.Name),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) GetCompany(ctx context.Context, id int) (*models.Company, error) {
	c := &models.Company{}
	query := `SELECT * FROM companies WHERE id=$1`
	if err := s.db.GetContext(ctx, c, query, id); err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (s *Storage) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	query := `SELECT * FROM companies ORDER BY name ASC`
	if err := s.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, translateErr(err)
	}
	return companies, nil
}

func (s *Storage) UpdateCompany(ctx context.Context, c *models.Company, actorID int) error {
	query := `
        UPDATE companies
        SET name=$1, cin=$2, pan=$3, gst=$4, contact_person=$5, email=$6, phone=$7,
            address=$8, status=$9, updated_at=NOW()
        WHERE id=$10
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.CIN, c.PAN, c.GST, c.ContactPerson, c.Email, c.Phone, c.Address, c.Status, c.ID).
		Scan(&c.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCompanyUpdated,
		Description:  fmt.Sprintf("Company %q updated", c.Name),
		UserID:       actorID,
	})
	return nil
}

// DeleteCompany сначала читает запись, чтобы сохранить имя для журнала
func (s *Storage) DeleteCompany(ctx context.Context, id, actorID int) error {
	c, err := s.GetCompany(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityCompanyDeleted,
		Description:  fmt.Sprintf("Company %q deleted", c.Name),
		UserID:       actorID,
	})
	return nil
}
