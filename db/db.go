package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"tendercrm/models"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// ErrNotFound — запись с таким id отсутствует
var ErrNotFound = errors.New("record not found")

// ConflictError — нарушение уникальности или ссылочного ограничения.
// Count заполняется для guard-проверок (например, число пользователей роли).
type ConflictError struct {
	Message string
	Count   int
}

func (e *ConflictError) Error() string { return e.Message }

// translateErr приводит ошибки драйвера к ошибкам хранилища
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return &ConflictError{Message: uniqueViolationMessage(pqErr.Constraint)}
		case "23503": // foreign_key_violation
			// Postgres начинает сообщение с команды-нарушителя:
			// "insert or update ..." — нет родительской записи,
			// "update or delete ..." — запись ещё используется
			if strings.HasPrefix(pqErr.Message, "insert or update") {
				return &ConflictError{Message: "referenced record does not exist"}
			}
			return &ConflictError{Message: "record is referenced by another record"}
		}
	}
	return err
}

func uniqueViolationMessage(constraint string) string {
	switch constraint {
	case "users_username_key":
		return "username already in use"
	case "tenders_reference_number_key":
		return "reference number already in use"
	case "clients_name_key":
		return "client name already in use"
	case "roles_name_key":
		return "role name already in use"
	}
	return "duplicate value"
}

// logActivity вставляет запись журнала как побочный эффект мутации.
// Ошибка вставки не прерывает основную операцию, только пишется в лог.
func (s *Storage) logActivity(ctx context.Context, a *models.Activity) {
	query := `
        INSERT INTO activities (tender_id, activity_type, description, user_id)
        VALUES ($1, $2, $3, $4)`
	if _, err := s.db.ExecContext(ctx, query, a.TenderID, a.ActivityType, a.Description, a.UserID); err != nil {
		zap.L().Warn("failed to insert activity row",
			zap.String("activity_type", string(a.ActivityType)),
			zap.Error(err))
	}
}
