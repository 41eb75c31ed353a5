package handlers_test

import (
	"context"
	"time"

	"tendercrm/db"
	"tendercrm/models"
)

// MockStorage реализует StorageInterface для тестов обработчиков
type MockStorage struct {
	createUserErr   error
	createTenderErr error
	deleteRoleErr   error
	getTenderErr    error

	createdUser     *models.User
	updatedCustomer *models.Customer
	createdLead     *models.Lead

	users []models.User

	ListTendersFunc      func(ctx context.Context, f *db.TenderFilter) ([]models.Tender, int, error)
	RecentActivitiesFunc func(ctx context.Context, limit int) ([]models.ActivityFeedItem, error)
}

func (m *MockStorage) CreateUser(ctx context.Context, u *models.User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	u.ID = 7
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.createdUser = u
	return nil
}

func (m *MockStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	return &models.User{
		ID:           id,
		Username:     "system",
		PasswordHash: "$2a$10$secret-hash-value",
		Name:         "System",
		Role:         "admin",
		Status:       "active",
	}, nil
}

func (m *MockStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return &models.User{ID: 1, Username: username, PasswordHash: "$2a$10$secret-hash-value"}, nil
}

func (m *MockStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.users != nil {
		return m.users, nil
	}
	return []models.User{{ID: 1, Username: "system", PasswordHash: "$2a$10$secret-hash-value", Name: "System"}}, nil
}

func (m *MockStorage) UpdateUser(ctx context.Context, u *models.User) error { return nil }
func (m *MockStorage) DeleteUser(ctx context.Context, id int) error         { return nil }

func (m *MockStorage) CreateRole(ctx context.Context, r *models.Role) error {
	r.ID = 2
	return nil
}

func (m *MockStorage) GetRole(ctx context.Context, id int) (*models.Role, error) {
	return &models.Role{ID: id, Name: "manager"}, nil
}

func (m *MockStorage) ListRoles(ctx context.Context) ([]models.Role, error) {
	return []models.Role{{ID: 1, Name: "admin"}}, nil
}

func (m *MockStorage) UpdateRole(ctx context.Context, r *models.Role) error { return nil }

func (m *MockStorage) DeleteRole(ctx context.Context, id int) error {
	return m.deleteRoleErr
}

func (m *MockStorage) CreateCompany(ctx context.Context, c *models.Company, actorID int) error {
	c.ID = 3
	return nil
}

func (m *MockStorage) GetCompany(ctx context.Context, id int) (*models.Company, error) {
	return &models.Company{ID: id, Name: "Acme Builders", Status: "active"}, nil
}

func (m *MockStorage) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return []models.Company{{ID: 1, Name: "Acme Builders"}}, nil
}

func (m *MockStorage) UpdateCompany(ctx context.Context, c *models.Company, actorID int) error {
	return nil
}
func (m *MockStorage) DeleteCompany(ctx context.Context, id, actorID int) error { return nil }

func (m *MockStorage) CreateClient(ctx context.Context, c *models.Client) error {
	c.ID = 4
	return nil
}

func (m *MockStorage) GetClient(ctx context.Context, id int) (*models.Client, error) {
	return &models.Client{ID: id, Name: "City Council"}, nil
}

func (m *MockStorage) ListClients(ctx context.Context) ([]models.Client, error) {
	return []models.Client{{ID: 1, Name: "City Council"}}, nil
}

func (m *MockStorage) UpdateClient(ctx context.Context, c *models.Client) error { return nil }
func (m *MockStorage) DeleteClient(ctx context.Context, id int) error           { return nil }

func (m *MockStorage) CreateCustomer(ctx context.Context, c *models.Customer, actorID int) error {
	c.ID = 5
	return nil
}

func (m *MockStorage) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return &models.Customer{ID: id, Name: "Existing Customer", Phone: "111", Status: "active"}, nil
}

func (m *MockStorage) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return []models.Customer{{ID: 1, Name: "Existing Customer"}}, nil
}

func (m *MockStorage) UpdateCustomer(ctx context.Context, c *models.Customer, actorID int) error {
	m.updatedCustomer = c
	return nil
}
func (m *MockStorage) DeleteCustomer(ctx context.Context, id, actorID int) error { return nil }

func (m *MockStorage) CreateTender(ctx context.Context, t *models.Tender, actorID int) error {
	if m.createTenderErr != nil {
		return m.createTenderErr
	}
	t.ID = 6
	t.CreatedAt = time.Now()
	return nil
}

func (m *MockStorage) GetTender(ctx context.Context, id int) (*models.Tender, error) {
	if m.getTenderErr != nil {
		return nil, m.getTenderErr
	}
	return &models.Tender{ID: id, ReferenceNumber: "TND-001", Title: "Road Works", Status: models.TenderOpen}, nil
}

func (m *MockStorage) ListTenders(ctx context.Context, f *db.TenderFilter) ([]models.Tender, int, error) {
	if m.ListTendersFunc != nil {
		return m.ListTendersFunc(ctx, f)
	}
	return []models.Tender{{ID: 1, ReferenceNumber: "TND-001", Title: "Sample Tender"}}, 1, nil
}

func (m *MockStorage) UpdateTender(ctx context.Context, t *models.Tender, actorID int) error {
	return nil
}
func (m *MockStorage) DeleteTender(ctx context.Context, id, actorID int) error { return nil }

func (m *MockStorage) CreateDocument(ctx context.Context, d *models.Document) error {
	d.ID = 8
	d.UploadedAt = time.Now()
	return nil
}

func (m *MockStorage) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	return &models.Document{ID: id, TenderID: 1, Filename: "spec.pdf"}, nil
}

func (m *MockStorage) ListTenderDocuments(ctx context.Context, tenderID int) ([]models.Document, error) {
	return []models.Document{{ID: 1, TenderID: tenderID, Filename: "spec.pdf"}}, nil
}

func (m *MockStorage) DeleteDocument(ctx context.Context, id int) error { return nil }

func (m *MockStorage) RecentActivities(ctx context.Context, limit int) ([]models.ActivityFeedItem, error) {
	if m.RecentActivitiesFunc != nil {
		return m.RecentActivitiesFunc(ctx, limit)
	}
	return []models.ActivityFeedItem{}, nil
}

func (m *MockStorage) CreateLead(ctx context.Context, l *models.Lead, actorID int) error {
	l.ID = 9
	m.createdLead = l
	return nil
}

func (m *MockStorage) GetLead(ctx context.Context, id int) (*models.Lead, error) {
	return &models.Lead{ID: id, Title: "Bridge Repair", CompanyID: 1, Status: models.LeadNew}, nil
}

func (m *MockStorage) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return []models.Lead{{ID: 1, Title: "Bridge Repair", CompanyID: 1}}, nil
}

func (m *MockStorage) UpdateLead(ctx context.Context, l *models.Lead, actorID int) error { return nil }
func (m *MockStorage) DeleteLead(ctx context.Context, id, actorID int) error             { return nil }

func (m *MockStorage) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{TotalTenders: 12, OpenTenders: 4, TotalLeads: 3}, nil
}
