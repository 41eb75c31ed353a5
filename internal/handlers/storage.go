package handlers

import (
	"context"

	"tendercrm/db"
	"tendercrm/models"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id int) error

	CreateRole(ctx context.Context, r *models.Role) error
	GetRole(ctx context.Context, id int) (*models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	UpdateRole(ctx context.Context, r *models.Role) error
	DeleteRole(ctx context.Context, id int) error

	CreateCompany(ctx context.Context, c *models.Company, actorID int) error
	GetCompany(ctx context.Context, id int) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, c *models.Company, actorID int) error
	DeleteCompany(ctx context.Context, id, actorID int) error

	CreateClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id int) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id int) error

	CreateCustomer(ctx context.Context, c *models.Customer, actorID int) error
	GetCustomer(ctx context.Context, id int) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, c *models.Customer, actorID int) error
	DeleteCustomer(ctx context.Context, id, actorID int) error

	CreateTender(ctx context.Context, t *models.Tender, actorID int) error
	GetTender(ctx context.Context, id int) (*models.Tender, error)
	ListTenders(ctx context.Context, f *db.TenderFilter) ([]models.Tender, int, error)
	UpdateTender(ctx context.Context, t *models.Tender, actorID int) error
	DeleteTender(ctx context.Context, id, actorID int) error

	CreateDocument(ctx context.Context, d *models.Document) error
	GetDocument(ctx context.Context, id int) (*models.Document, error)
	ListTenderDocuments(ctx context.Context, tenderID int) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id int) error

	RecentActivities(ctx context.Context, limit int) ([]models.ActivityFeedItem, error)

	CreateLead(ctx context.Context, l *models.Lead, actorID int) error
	GetLead(ctx context.Context, id int) (*models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)
	UpdateLead(ctx context.Context, l *models.Lead, actorID int) error
	DeleteLead(ctx context.Context, id, actorID int) error

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}
