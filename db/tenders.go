package db

import (
	"context"
	"fmt"

	"tendercrm/models"
)

func (s *Storage) CreateTender(ctx context.Context, t *models.Tender, actorID int) error {
	query := `
        INSERT INTO tenders
            (reference_number, title, client_id, company_id, department, publish_date,
             due_date, status, estimated_value, description, created_by)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		t.ReferenceNumber, t.Title, t.ClientID, t.CompanyID, t.Department, t.PublishDate,
		t.DueDate, t.Status, t.EstimatedValue, t.Description, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		TenderID:     &t.ID,
		ActivityType: models.ActivityTenderCreated,
		Description:  fmt.Sprintf("Tender %q created", t.Title),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) GetTender(ctx context.Context, id int) (*models.Tender, error) {
	t := &models.Tender{}
	query := `SELECT * FROM tenders WHERE id=$1`
	if err := s.db.GetContext(ctx, t, query, id); err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

// ListTenders возвращает страницу тендеров и общее число совпадений.
// Сначала COUNT по тому же предикату, затем выборка страницы.
func (s *Storage) ListTenders(ctx context.Context, f *TenderFilter) ([]models.Tender, int, error) {
	where, args := f.whereClause()

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(1) FROM tenders"+where, args...); err != nil {
		return nil, 0, translateErr(err)
	}

	query := "SELECT * FROM tenders" + where + " ORDER BY created_at DESC, id DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset())

	tenders := []models.Tender{}
	if err := s.db.SelectContext(ctx, &tenders, query, args...); err != nil {
		return nil, 0, translateErr(err)
	}
	return tenders, total, nil
}

func (s *Storage) UpdateTender(ctx context.Context, t *models.Tender, actorID int) error {
	query := `
        UPDATE tenders
        SET reference_number=$1, title=$2, client_id=$3, company_id=$4, department=$5,
            publish_date=$6, due_date=$7, status=$8, estimated_value=$9, description=$10,
            updated_at=NOW()
        WHERE id=$11
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		t.ReferenceNumber, t.Title, t.ClientID, t.CompanyID, t.Department,
		t.PublishDate, t.DueDate, t.Status, t.EstimatedValue, t.Description, t.ID).
		Scan(&t.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		TenderID:     &t.ID,
		ActivityType: models.ActivityTenderUpdated,
		Description:  fmt.Sprintf("Tender %q updated", t.Title),
		UserID:       actorID,
	})
	return nil
}

// DeleteTender читает запись перед удалением, чтобы сохранить название
// для журнала. Документы тендера удаляются каскадом по внешнему ключу.
func (s *Storage) DeleteTender(ctx context.Context, id, actorID int) error {
	t, err := s.GetTender(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenders WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityTenderDeleted,
		Description:  fmt.Sprintf("Tender %q deleted", t.Title),
		UserID:       actorID,
	})
	return nil
}
