package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/config"
	"github.com/vistoriaguardioes/financeiro/app/database"
	"github.com/vistoriaguardioes/financeiro/app/logger"
	"github.com/vistoriaguardioes/financeiro/app/services"
)

// GetDashboard handles the dashboard page.
func GetDashboard(c *fiber.Ctx) error {
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
	})
}

// GetResumoAPI returns the financial summary as JSON: totals, per-status
// counts and sums, and per-supplier totals for the overview chart. Always
// recomputed over the full event set.
func GetResumoAPI(c *fiber.Ctx) error {
	eventos, err := database.GetAllEventos(config.GetDB())
	if err != nil {
		log := logger.WithComponent("dashboard")
		log.Error().Err(err).Msg("failed to load events")
		return c.Status(500).JSON(fiber.Map{
			"error": "Não foi possível calcular o resumo financeiro",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    services.CalcularResumo(eventos),
	})
}
