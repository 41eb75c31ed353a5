package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tendercrm/db"
)

// Handler оборачивает хранилище для доступа к данным
type Handler struct {
	Store StorageInterface
}

// NewHandler создает новый Handler
func NewHandler(store StorageInterface) *Handler {
	return &Handler{Store: store}
}

var validate = validator.New()

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// decodeJSON читает тело с лимитом размера, разбирает JSON и гоняет
// структуру через validator. Возвращаемая ошибка пригодна для ответа 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := decodeJSONBody(w, r, v); err != nil {
		return err
	}
	return validateStruct(v)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	// Ограничение размера тела, чтобы избежать DoS
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("failed to read request body")
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, v); err != nil {
		return errors.New("invalid JSON format")
	}
	return nil
}

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return validationMessage(err)
	}
	return nil
}

// validationMessage превращает ошибку validator в читаемое сообщение
func validationMessage(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("field %s failed validation: %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("field %s failed validation: %s", fe.Field(), fe.Tag())
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// storeError переводит ошибку хранилища в HTTP-статус:
// not found → 404, конфликт → 400, остальное → 500
func (h *Handler) storeError(w http.ResponseWriter, err error) {
	var conflict *db.ConflictError
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &conflict):
		if conflict.Count > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": conflict.Message,
				"count": conflict.Count,
			})
			return
		}
		writeError(w, http.StatusBadRequest, conflict.Message)
	default:
		zap.L().Error("storage error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// idParam парсит числовой параметр пути
func idParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
