package handlers

import (
	"net/http"

	"tendercrm/internal/auth"
	"tendercrm/models"
)

// ListTenderDocumentsHandler возвращает документы тендера.
// 404, если самого тендера нет.
func (h *Handler) ListTenderDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := idParam(r, "tenderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.Store.GetTender(r.Context(), tenderID); err != nil {
		h.storeError(w, err)
		return
	}
	docs, err := h.Store.ListTenderDocuments(r.Context(), tenderID)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// CreateDocumentHandler регистрирует документ тендера. Сами байты файла
// хранятся вне этого сервиса, здесь только метаданные и путь.
func (h *Handler) CreateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, err := idParam(r, "tenderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.Store.GetTender(r.Context(), tenderID); err != nil {
		h.storeError(w, err)
		return
	}

	var doc models.Document
	doc.TenderID = tenderID
	if err := decodeDocument(w, r, &doc, tenderID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	actorID := auth.UserID(r.Context())
	doc.UploadedBy = &actorID

	if err := h.Store.CreateDocument(r.Context(), &doc); err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// decodeDocument разбирает тело и принудительно ставит tender_id из пути
func decodeDocument(w http.ResponseWriter, r *http.Request, doc *models.Document, tenderID int) error {
	if err := decodeJSONBody(w, r, doc); err != nil {
		return err
	}
	doc.TenderID = tenderID
	return validateStruct(doc)
}

func (h *Handler) GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "documentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	doc, err := h.Store.GetDocument(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "documentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.DeleteDocument(r.Context(), id); err != nil {
		h.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
