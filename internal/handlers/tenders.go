package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tendercrm/db"
	"tendercrm/internal/auth"
	"tendercrm/models"
)

// TenderListResponse — страница тендеров плюс общее число совпадений
type TenderListResponse struct {
	Items []models.Tender `json:"items"`
	Total int             `json:"total"`
}

// parseTenderFilter парсит query-параметры списка тендеров,
// с дефолтами page=1, limit=10 и потолком limit=100
func parseTenderFilter(r *http.Request) *db.TenderFilter {
	q := r.URL.Query()
	f := &db.TenderFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
		Page:   1,
		Limit:  10,
	}
	if v := q.Get("clientId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			f.ClientID = id
		}
	}
	if v := q.Get("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.StartDate = &t
		}
	}
	if v := q.Get("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// включительно до конца дня
			end := t.Add(24*time.Hour - time.Second)
			f.EndDate = &end
		}
	}
	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			f.Page = p
		}
	}
	if v := q.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 && l <= 100 {
			f.Limit = l
		}
	}
	return f
}

// GetTendersHandler возвращает страницу тендеров с фильтрами
func (h *Handler) GetTendersHandler(w http.ResponseWriter, r *http.Request) {
	filter := parseTenderFilter(r)
	tenders, total, err := h.Store.ListTenders(r.Context(), filter)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TenderListResponse{Items: tenders, Total: total})
}

func (h *Handler) GetTenderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tenderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tender, err := h.Store.GetTender(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tender)
}

func (h *Handler) CreateTenderHandler(w http.ResponseWriter, r *http.Request) {
	var tender models.Tender
	if err := decodeJSON(w, r, &tender); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if tender.Status == "" {
		tender.Status = models.TenderOpen
	}
	actorID := auth.UserID(r.Context())
	tender.CreatedBy = &actorID

	if err := h.Store.CreateTender(r.Context(), &tender, actorID); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tender)
}

func (h *Handler) UpdateTenderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tenderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var input models.TenderUpdate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tender, err := h.Store.GetTender(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	if input.ReferenceNumber != nil {
		tender.ReferenceNumber = *input.ReferenceNumber
	}
	if input.Title != nil {
		tender.Title = *input.Title
	}
	if input.ClientID != nil {
		tender.ClientID = input.ClientID
	}
	if input.CompanyID != nil {
		tender.CompanyID = input.CompanyID
	}
	if input.Department != nil {
		tender.Department = *input.Department
	}
	if input.PublishDate != nil {
		tender.PublishDate = input.PublishDate
	}
	if input.DueDate != nil {
		tender.DueDate = input.DueDate
	}
	if input.Status != nil {
		tender.Status = *input.Status
	}
	if input.EstimatedValue != nil {
		tender.EstimatedValue = *input.EstimatedValue
	}
	if input.Description != nil {
		tender.Description = *input.Description
	}

	if err := h.Store.UpdateTender(r.Context(), tender, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tender)
}

// DeleteTenderHandler удаляет тендер вместе с его документами
func (h *Handler) DeleteTenderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tenderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteTender(r.Context(), id, auth.UserID(r.Context())); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
