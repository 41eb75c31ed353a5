package db

import (
	"context"

	"tendercrm/models"
)

// DashboardStats — счётчики для главной страницы
func (s *Storage) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	st := &models.DashboardStats{}
	query := `
        SELECT
            (SELECT COUNT(1) FROM tenders)                      AS total_tenders,
            (SELECT COUNT(1) FROM tenders WHERE status='open')  AS open_tenders,
            (SELECT COUNT(1) FROM leads)                        AS total_leads,
            (SELECT COUNT(1) FROM customers)                    AS total_customers,
            (SELECT COUNT(1) FROM companies)                    AS total_companies,
            (SELECT COUNT(1) FROM clients)                      AS total_clients`
	if err := s.db.GetContext(ctx, st, query); err != nil {
		return nil, translateErr(err)
	}
	return st, nil
}
