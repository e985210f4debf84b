package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/stats"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	DocumentUC     *usecase.DocumentUseCase
	NotificationUC *usecase.NotificationUseCase
	StatsUC        *stats.OverviewUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrAccountant := RequireRole(entity.RoleAdmin, entity.RoleAccountant)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleAccountant, entity.RoleCompany)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/:id/status", userHandler.UpdateStatus)

	// Accountants
	accountants := protected.Group("/accountants")
	accountants.Get("/", adminOnly, userHandler.ListAccountants)
	accountants.Get("/:id/companies", adminOrAccountant, userHandler.AccountantCompanies)

	// Companies
	companies := protected.Group("/companies", anyRole)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.Get)
	companies.Post("/:id/assign", adminOnly, companyHandler.AssignAccountant)
	companies.Patch("/:id/status", adminOnly, companyHandler.UpdateStatus)
	companies.Post("/:id/profile-picture", companyHandler.UpdateProfilePicture)

	// Documents
	documents := protected.Group("/documents", anyRole)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/company/:companyId", documentHandler.ListByCompany)
	documents.Get("/:id", documentHandler.Get)
	documents.Patch("/:id/status", adminOrAccountant, documentHandler.UpdateStatus)

	// Notifications
	notifications := protected.Group("/notifications", anyRole)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/read-all", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Stats
	statsGroup := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	statsGroup.Get("/overview", adminOnly, statsHandler.Overview)
	statsGroup.Get("/overview/report", adminOnly, statsHandler.OverviewReport)
	statsGroup.Get("/accountant", RequireRole(entity.RoleAccountant), statsHandler.AccountantOverview)
}
