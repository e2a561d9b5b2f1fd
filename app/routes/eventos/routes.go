package eventos

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/routes/auth"
	"github.com/vistoriaguardioes/financeiro/app/services"
)

var servico *services.EventosService

// SetupEventosRoutes sets up event pages and API routes.
func SetupEventosRoutes(app *fiber.App, s *services.EventosService) {
	servico = s

	// Page routes
	app.Get("/eventos", auth.AuthMiddleware, EventosPageHandler)
	app.Get("/novo-evento", auth.AuthMiddleware, NovoEventoPageHandler)
	app.Get("/editar-evento/:id", auth.AuthMiddleware, EditarEventoPageHandler)

	// API routes
	api := app.Group("/api/eventos")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEventosAPI)
	api.Get("/opcoes-filtro", GetOpcoesFiltroAPI)
	api.Get("/exportar", ExportarCSVAPI)
	api.Get("/placa/:placa", GetEventosPorPlacaAPI)
	api.Get("/:id", GetEventoAPI)
	api.Post("/", CreateEventoAPI)
	api.Put("/:id", UpdateEventoAPI)
	api.Patch("/:id/status", UpdateStatusAPI)
	api.Delete("/:id", DeleteEventoAPI)
}
