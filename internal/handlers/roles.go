package handlers

import (
	"net/http"

	"tendercrm/models"
)

func (h *Handler) CreateRoleHandler(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := decodeJSON(w, r, &role); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.CreateRole(r.Context(), &role); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, role)
}

func (h *Handler) GetRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "roleId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	role, err := h.Store.GetRole(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (h *Handler) ListRolesHandler(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Store.ListRoles(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *Handler) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "roleId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.RoleUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.Store.GetRole(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = *input.Description
	}

	if err := h.Store.UpdateRole(r.Context(), role); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

// DeleteRoleHandler отказывает с 400 и числом пользователей,
// если роль ещё кому-то назначена
func (h *Handler) DeleteRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "roleId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteRole(r.Context(), id); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
