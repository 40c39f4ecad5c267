package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager   *session.Manager
	Dashboard *dashboard.Service
	Registry  *territory.Registry
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y cambio de contraseña con sesión)
	authHandler := NewAuthHandler(deps.Manager)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Manager))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Users
	userHandler := NewUserHandler(deps.Manager)
	protected.Get("/users", userHandler.List)
	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/me", userHandler.UpdateProfile)

	// Messages (enviar exige al menos líder comunitario; leer no)
	messageHandler := NewMessageHandler(deps.Manager)
	protected.Get("/messages", messageHandler.List)
	protected.Post("/messages", RequireMinimumRole(entity.RoleLiderComunitario), messageHandler.Send)
	protected.Post("/messages/:id/read", messageHandler.MarkRead)
	protected.Get("/notifications", messageHandler.Notifications)

	// Finances (ver exige al menos candidato)
	financeHandler := NewFinanceHandler(deps.Manager)
	protected.Get("/finances", RequireMinimumRole(entity.RoleCandidato), financeHandler.List)
	protected.Get("/finances/summary", RequireMinimumRole(entity.RoleCandidato), financeHandler.Summary)

	// Territories
	territoryHandler := NewTerritoryHandler(deps.Registry)
	protected.Get("/territories", territoryHandler.List)
	protected.Get("/territories/:zone/stats", territoryHandler.Stats)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Manager, deps.Dashboard)
	protected.Get("/dashboard", dashboardHandler.Get)
}
