package db

import (
	"context"
	"fmt"

	"tendercrm/models"
)

func (s *Storage) CreateLead(ctx context.Context, l *models.Lead, actorID int) error {
	query := `
        INSERT INTO leads
            (title, company_id, contact_person, source, emd_value, status, assigned_to,
             tender_ref, bid_start_date, bid_end_date, notes)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		l.Title, l.CompanyID, l.ContactPerson, l.Source, l.EMDValue, l.Status, l.AssignedTo,
		l.TenderRef, l.BidStartDate, l.BidEndDate, l.Notes).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityLeadCreated,
		Description:  fmt.Sprintf("Lead %q created", l.Title),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) GetLead(ctx context.Context, id int) (*models.Lead, error) {
	l := &models.Lead{}
	query := `SELECT * FROM leads WHERE id=$1`
	if err := s.db.GetContext(ctx, l, query, id); err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

func (s *Storage) ListLeads(ctx context.Context) ([]models.Lead, error) {
	leads := []models.Lead{}
	query := `SELECT * FROM leads ORDER BY created_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, translateErr(err)
	}
	return leads, nil
}

func (s *Storage) UpdateLead(ctx context.Context, l *models.Lead, actorID int) error {
	query := `
        UPDATE leads
        SET title=$1, company_id=$2, contact_person=$3, source=$4, emd_value=$5, status=$6,
            assigned_to=$7, tender_ref=$8, bid_start_date=$9, bid_end_date=$10, notes=$11,
            updated_at=NOW()
        WHERE id=$12
        RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query,
		l.Title, l.CompanyID, l.ContactPerson, l.Source, l.EMDValue, l.Status,
		l.AssignedTo, l.TenderRef, l.BidStartDate, l.BidEndDate, l.Notes, l.ID).
		Scan(&l.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityLeadUpdated,
		Description:  fmt.Sprintf("Lead %q updated", l.Title),
		UserID:       actorID,
	})
	return nil
}

func (s *Storage) DeleteLead(ctx context.Context, id, actorID int) error {
	l, err := s.GetLead(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.logActivity(ctx, &models.Activity{
		ActivityType: models.ActivityLeadDeleted,
		Description:  fmt.Sprintf("Lead %q deleted", l.Title),
		UserID:       actorID,
	})
	return nil
}
