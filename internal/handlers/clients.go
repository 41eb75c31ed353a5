package handlers

import (
	"net/http"

	"tendercrm/models"
)

func (h *Handler) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := decodeJSON(w, r, &client); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.CreateClient(r.Context(), &client); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *Handler) GetClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	client, err := h.Store.GetClient(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.ListClients(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handler) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.ClientUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.Store.GetClient(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.ContactPerson != nil {
		client.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}

	if err := h.Store.UpdateClient(r.Context(), client); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteClient(r.Context(), id); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
