package db

import (
	"context"

	"tendercrm/models"
)

func (s *Storage) CreateDocument(ctx context.Context, d *models.Document) error {
	query := `
        INSERT INTO documents (tender_id, filename, file_size, file_type, file_path, uploaded_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, uploaded_at`
	err := s.db.QueryRowContext(ctx, query,
		d.TenderID, d.Filename, d.FileSize, d.FileType, d.FilePath, d.UploadedBy).
		Scan(&d.ID, &d.UploadedAt)
	return translateErr(err)
}

func (s *Storage) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	d := &models.Document{}
	query := `SELECT * FROM documents WHERE id=$1`
	if err := s.db.GetContext(ctx, d, query, id); err != nil {
		return nil, translateErr(err)
	}
	return d, nil
}

func (s *Storage) ListTenderDocuments(ctx context.Context, tenderID int) ([]models.Document, error) {
	docs := []models.Document{}
	query := `SELECT * FROM documents WHERE tender_id=$1 ORDER BY uploaded_at DESC, id DESC`
	if err := s.db.SelectContext(ctx, &docs, query, tenderID); err != nil {
		return nil, translateErr(err)
	}
	return docs, nil
}

func (s *Storage) DeleteDocument(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
