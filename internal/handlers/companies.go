package handlers

import (
	"net/http"

	"tendercrm/internal/auth"
	"tendercrm/models"
)

func (h *Handler) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := decodeJSON(w, r, &company); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if company.Status == "" {
		company.Status = "active"
	}
	if err := h.Store.CreateCompany(r.Context(), &company, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *Handler) GetCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "companyId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	company, err := h.Store.GetCompany(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *Handler) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Store.ListCompanies(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *Handler) UpdateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "companyId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.CompanyUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	company, err := h.Store.GetCompany(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.CIN != nil {
		company.CIN = *input.CIN
	}
	if input.PAN != nil {
		company.PAN = *input.PAN
	}
	if input.GST != nil {
		company.GST = *input.GST
	}
	if input.ContactPerson != nil {
		company.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		company.Email = *input.Email
	}
	if input.Phone != nil {
		company.Phone = *input.Phone
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.Status != nil {
		company.Status = *input.Status
	}

	if err := h.Store.UpdateCompany(r.Context(), company, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *Handler) DeleteCompanyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "companyId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteCompany(r.Context(), id, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
