package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tendercrm/db"
	"tendercrm/internal/handlers"
	"tendercrm/internal/handlers/testutils"
	"tendercrm/models"
)

func TestGetTendersHandler_Pagination(t *testing.T) {
	mockStore := &MockStorage{
		ListTendersFunc: func(ctx context.Context, f *db.TenderFilter) ([]models.Tender, int, error) {
			require.Equal(t, 2, f.Page)
			require.Equal(t, 10, f.Limit)
			require.Equal(t, 10, f.Offset())
			tenders := make([]models.Tender, 10)
			for i := range tenders {
				tenders[i] = models.Tender{ID: 11 + i, Title: "Tender"}
			}
			return tenders, 25, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/tenders?page=2&limit=10", nil)
	w := httptest.NewRecorder()

	handler.GetTendersHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp handlers.TenderListResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp.Items, 10)
	require.Equal(t, 25, resp.Total)
	require.Equal(t, 11, resp.Items[0].ID)
}

func TestGetTendersHandler_Filters(t *testing.T) {
	var got *db.TenderFilter
	mockStore := &MockStorage{
		ListTendersFunc: func(ctx context.Context, f *db.TenderFilter) ([]models.Tender, int, error) {
			got = f
			return []models.Tender{}, 0, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet,
		"/api/tenders?status=open&clientId=3&search=ABC&startDate=2025-01-01&endDate=2025-02-01", nil)
	w := httptest.NewRecorder()

	handler.GetTendersHandler(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	require.NotNil(t, got)
	require.Equal(t, "open", got.Status)
	require.Equal(t, 3, got.ClientID)
	require.Equal(t, "ABC", got.Search)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	require.True(t, got.EndDate.After(*got.StartDate))
	// дефолты при отсутствии page/limit
	require.Equal(t, 1, got.Page)
	require.Equal(t, 10, got.Limit)
}

func TestCreateTenderHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{
        "referenceNumber": "TND-042",
        "title": "School Renovation",
        "department": "Education"
    }`
	req := httptest.NewRequest(http.MethodPost, "/api/tenders", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateTenderHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var tender models.Tender
	require.NoError(t, json.NewDecoder(res.Body).Decode(&tender))
	require.Equal(t, 6, tender.ID)
	require.Equal(t, "TND-042", tender.ReferenceNumber)
	// статус по умолчанию
	require.Equal(t, models.TenderOpen, tender.Status)
}

func TestCreateTenderHandler_ValidationError(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	// нет обязательного title
	reqBody := `{"referenceNumber": "TND-042"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenders", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateTenderHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "Title")
}

func TestCreateTenderHandler_DuplicateReference(t *testing.T) {
	mockStore := &MockStorage{
		createTenderErr: &db.ConflictError{Message: "reference number already in use"},
	}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{"referenceNumber": "TND-001", "title": "Duplicate"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenders", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateTenderHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "reference number already in use")
}

func TestGetTenderHandler_NotFound(t *testing.T) {
	mockStore := &MockStorage{getTenderErr: db.ErrNotFound}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/tenders/99", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"tenderId": "99"})
	w := httptest.NewRecorder()

	handler.GetTenderHandler(w, req)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteTenderHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodDelete, "/api/tenders/1", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"tenderId": "1"})
	w := httptest.NewRecorder()

	handler.DeleteTenderHandler(w, req)

	require.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}

func TestDeleteRoleHandler_WithAssignedUsers(t *testing.T) {
	mockStore := &MockStorage{
		deleteRoleErr: &db.ConflictError{Message: "role has 3 assigned users", Count: 3},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodDelete, "/api/roles/1", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"roleId": "1"})
	w := httptest.NewRecorder()

	handler.DeleteRoleHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var resp struct {
		Error string `json:"error"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Equal(t, "role has 3 assigned users", resp.Error)
	require.Equal(t, 3, resp.Count)
}

func TestDeleteRoleHandler_NoUsers(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodDelete, "/api/roles/1", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"roleId": "1"})
	w := httptest.NewRecorder()

	handler.DeleteRoleHandler(w, req)

	require.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}

func TestCreateUserHandler_HashesAndRedactsPassword(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{"username": "jdoe", "password": "secret123", "name": "John Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateUserHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// в ответе не должно быть ни пароля, ни хеша
	require.NotContains(t, string(body), "password")
	require.NotContains(t, string(body), "secret123")

	// в хранилище ушёл bcrypt-хеш, а не открытый пароль
	require.NotNil(t, mockStore.createdUser)
	require.NotEqual(t, "secret123", mockStore.createdUser.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(mockStore.createdUser.PasswordHash), []byte("secret123")))
}

func TestListUsersHandler_RedactsPassword(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()

	handler.ListUsersHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "system")
	require.NotContains(t, string(body), "password")
	require.NotContains(t, string(body), "secret-hash-value")
}

func TestCurrentUserHandler_RedactsPassword(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()

	handler.CurrentUserHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotContains(t, string(body), "password")
	require.NotContains(t, string(body), "secret-hash-value")
}

func TestRecentActivitiesHandler_Limit(t *testing.T) {
	var gotLimit int
	mockStore := &MockStorage{
		RecentActivitiesFunc: func(ctx context.Context, limit int) ([]models.ActivityFeedItem, error) {
			gotLimit = limit
			items := make([]models.ActivityFeedItem, limit)
			for i := range items {
				items[i] = models.ActivityFeedItem{
					Activity: models.Activity{ID: i + 1, ActivityType: models.ActivityTenderCreated, UserID: 1},
					UserName: "System",
				}
			}
			return items, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/activities/recent?limit=3", nil)
	w := httptest.NewRecorder()

	handler.RecentActivitiesHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, 3, gotLimit)

	var items []models.ActivityFeedItem
	require.NoError(t, json.NewDecoder(res.Body).Decode(&items))
	require.Len(t, items, 3)
	require.Equal(t, "System", items[0].UserName)
}

func TestRecentActivitiesHandler_DefaultLimit(t *testing.T) {
	var gotLimit int
	mockStore := &MockStorage{
		RecentActivitiesFunc: func(ctx context.Context, limit int) ([]models.ActivityFeedItem, error) {
			gotLimit = limit
			return []models.ActivityFeedItem{}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/activities/recent", nil)
	w := httptest.NewRecorder()

	handler.RecentActivitiesHandler(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	require.Equal(t, 5, gotLimit)
}

func TestUpdateCustomerHandler_PartialUpdate(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{"phone": "555-0101"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/customers/1", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = testutils.WithChiURLParams(req, map[string]string{"customerId": "1"})
	w := httptest.NewRecorder()

	handler.UpdateCustomerHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	// поменялся только телефон, имя осталось прежним
	require.NotNil(t, mockStore.updatedCustomer)
	require.Equal(t, "555-0101", mockStore.updatedCustomer.Phone)
	require.Equal(t, "Existing Customer", mockStore.updatedCustomer.Name)
}

func TestListTenderDocumentsHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/tenders/1/documents", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"tenderId": "1"})
	w := httptest.NewRecorder()

	handler.ListTenderDocumentsHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "spec.pdf")
}

func TestListTenderDocumentsHandler_TenderNotFound(t *testing.T) {
	mockStore := &MockStorage{getTenderErr: db.ErrNotFound}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/tenders/99/documents", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"tenderId": "99"})
	w := httptest.NewRecorder()

	handler.ListTenderDocumentsHandler(w, req)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestCreateLeadHandler_DefaultStatus(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{"title": "Metro Extension", "companyId": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateLeadHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.NotNil(t, mockStore.createdLead)
	require.Equal(t, models.LeadNew, mockStore.createdLead.Status)
}

func TestCreateLeadHandler_InvalidStatus(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	reqBody := `{"title": "Metro Extension", "companyId": 1, "status": "Maybe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateLeadHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDashboardStatsHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	handler.DashboardStatsHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats models.DashboardStats
	require.NoError(t, json.NewDecoder(res.Body).Decode(&stats))
	require.Equal(t, 12, stats.TotalTenders)
	require.Equal(t, 4, stats.OpenTenders)
}

func TestPingHandler(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()

	handler.PingHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "ok", string(body))
}
