package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard page and API routes.
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", auth.AuthMiddleware, GetDashboard)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/resumo", GetResumoAPI)
}
