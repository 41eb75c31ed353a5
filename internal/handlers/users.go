package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"tendercrm/internal/auth"
	"tendercrm/models"
)

// CreateUserHandler обрабатывает POST /api/users.
// Пароль хешируется перед сохранением, в ответ хеш не попадает.
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input models.UserCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         input.Role,
		RoleID:       input.RoleID,
		Department:   input.Department,
		Status:       input.Status,
	}
	if user.Status == "" {
		user.Status = "active"
	}

	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CurrentUserHandler возвращает пользователя из контекста запроса
func (h *Handler) CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.UserUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.PasswordHash = string(hash)
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.RoleID != nil {
		user.RoleID = input.RoleID
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	if err := h.Store.UpdateUser(r.Context(), user); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
