package db

import (
	"context"

	"tendercrm/models"
)

// RecentActivities — лента последних событий с именем пользователя из join.
// Порядок строго по убыванию времени, при равенстве — по порядку вставки.
func (s *Storage) RecentActivities(ctx context.Context, limit int) ([]models.ActivityFeedItem, error) {
	items := []models.ActivityFeedItem{}
	query := `
        SELECT a.id, a.tender_id, a.activity_type, a.description, a.user_id, a.created_at,
               u.name AS user_name
        FROM activities a
        JOIN users u ON a.user_id = u.id
        ORDER BY a.created_at DESC, a.id DESC
        LIMIT $1`
	if err := s.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, translateErr(err)
	}
	return items, nil
}
