package handlers

import (
	"net/http"

	"tendercrm/internal/auth"
	"tendercrm/models"
)

func (h *Handler) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := decodeJSON(w, r, &customer); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if customer.Status == "" {
		customer.Status = "active"
	}
	if err := h.Store.CreateCustomer(r.Context(), &customer, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "customerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.Store.GetCustomer(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) ListCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Store.ListCustomers(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "customerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.CustomerUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.Store.GetCustomer(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Company != nil {
		customer.Company = *input.Company
	}
	if input.ContactPerson != nil {
		customer.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Category != nil {
		customer.Category = *input.Category
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.LastContact != nil {
		customer.LastContact = input.LastContact
	}

	if err := h.Store.UpdateCustomer(r.Context(), customer, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "customerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteCustomer(r.Context(), id, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
