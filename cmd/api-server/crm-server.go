package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"tendercrm/db"
	"tendercrm/db/migrations"
	"tendercrm/internal/auth"
	"tendercrm/internal/config"
	"tendercrm/internal/handlers"
	"tendercrm/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zap.L().Sync()

	dbConn, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		zap.L().Fatal("cannot connect to db", zap.Error(err))
	}
	defer dbConn.Close()

	if err := migrations.Run(cfg.DatabaseURL); err != nil {
		zap.L().Fatal("migrations failed", zap.Error(err))
	}

	store := db.NewStorage(dbConn)
	h := handlers.NewHandler(store)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(auth.Middleware(func(ctx context.Context, id int) bool {
		_, err := store.GetUser(ctx, id)
		return err == nil
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)

		// пользователи и роли
		r.Get("/users", h.ListUsersHandler)
		r.Post("/users", h.CreateUserHandler)
		r.Get("/users/me", h.CurrentUserHandler)
		r.Get("/users/{userId}", h.GetUserHandler)
		r.Put("/users/{userId}", h.UpdateUserHandler)
		r.Patch("/users/{userId}", h.UpdateUserHandler)
		r.Delete("/users/{userId}", h.DeleteUserHandler)

		r.Get("/roles", h.ListRolesHandler)
		r.Post("/roles", h.CreateRoleHandler)
		r.Get("/roles/{roleId}", h.GetRoleHandler)
		r.Put("/roles/{roleId}", h.UpdateRoleHandler)
		r.Patch("/roles/{roleId}", h.UpdateRoleHandler)
		r.Delete("/roles/{roleId}", h.DeleteRoleHandler)

		// справочники
		r.Get("/companies", h.ListCompaniesHandler)
		r.Post("/companies", h.CreateCompanyHandler)
		r.Get("/companies/{companyId}", h.GetCompanyHandler)
		r.Put("/companies/{companyId}", h.UpdateCompanyHandler)
		r.Patch("/companies/{companyId}", h.UpdateCompanyHandler)
		r.Delete("/companies/{companyId}", h.DeleteCompanyHandler)

		r.Get("/clients", h.ListClientsHandler)
		r.Post("/clients", h.CreateClientHandler)
		r.Get("/clients/{clientId}", h.GetClientHandler)
		r.Put("/clients/{clientId}", h.UpdateClientHandler)
		r.Patch("/clients/{clientId}", h.UpdateClientHandler)
		r.Delete("/clients/{clientId}", h.DeleteClientHandler)

		r.Get("/customers", h.ListCustomersHandler)
		r.Post("/customers", h.CreateCustomerHandler)
		r.Get("/customers/{customerId}", h.GetCustomerHandler)
		r.Put("/customers/{customerId}", h.UpdateCustomerHandler)
		r.Patch("/customers/{customerId}", h.UpdateCustomerHandler)
		r.Delete("/customers/{customerId}", h.DeleteCustomerHandler)

		// тендеры и документы
		r.Get("/tenders", h.GetTendersHandler)
		r.Post("/tenders", h.CreateTenderHandler)
		r.Get("/tenders/{tenderId}", h.GetTenderHandler)
		r.Put("/tenders/{tenderId}", h.UpdateTenderHandler)
		r.Patch("/tenders/{tenderId}", h.UpdateTenderHandler)
		r.Delete("/tenders/{tenderId}", h.DeleteTenderHandler)
		r.Get("/tenders/{tenderId}/documents", h.ListTenderDocumentsHandler)
		r.Post("/tenders/{tenderId}/documents", h.CreateDocumentHandler)
		r.Get("/documents/{documentId}", h.GetDocumentHandler)
		r.Delete("/documents/{documentId}", h.DeleteDocumentHandler)

		// лиды
		r.Get("/leads", h.ListLeadsHandler)
		r.Post("/leads", h.CreateLeadHandler)
		r.Get("/leads/{leadId}", h.GetLeadHandler)
		r.Put("/leads/{leadId}", h.UpdateLeadHandler)
		r.Patch("/leads/{leadId}", h.UpdateLeadHandler)
		r.Delete("/leads/{leadId}", h.DeleteLeadHandler)

		// лента активности и дашборд
		r.Get("/activities/recent", h.RecentActivitiesHandler)
		r.Get("/dashboard/stats", h.DashboardStatsHandler)
	})

	zap.L().Info("starting server", zap.String("addr", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
