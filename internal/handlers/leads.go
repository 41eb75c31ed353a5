package handlers

import (
	"net/http"

	"tendercrm/internal/auth"
	"tendercrm/models"
)

func (h *Handler) CreateLeadHandler(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := decodeJSON(w, r, &lead); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if err := h.Store.CreateLead(r.Context(), &lead, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *Handler) GetLeadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "leadId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lead, err := h.Store.GetLead(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) ListLeadsHandler(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Store.ListLeads(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *Handler) UpdateLeadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "leadId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.LeadUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.Store.GetLead(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.Title != nil {
		lead.Title = *input.Title
	}
	if input.CompanyID != nil {
		lead.CompanyID = *input.CompanyID
	}
	if input.ContactPerson != nil {
		lead.ContactPerson = *input.ContactPerson
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.EMDValue != nil {
		lead.EMDValue = *input.EMDValue
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.AssignedTo != nil {
		lead.AssignedTo = input.AssignedTo
	}
	if input.TenderRef != nil {
		lead.TenderRef = input.TenderRef
	}
	if input.BidStartDate != nil {
		lead.BidStartDate = input.BidStartDate
	}
	if input.BidEndDate != nil {
		lead.BidEndDate = input.BidEndDate
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}

	if err := h.Store.UpdateLead(r.Context(), lead, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) DeleteLeadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "leadId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteLead(r.Context(), id, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
