package eventos

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/config"
	"github.com/vistoriaguardioes/financeiro/app/database"
)

func EventosPageHandler(c *fiber.Ctx) error {
	return c.Render("eventos/index", fiber.Map{
		"Title":       "Eventos Financeiros",
		"CurrentPage": "eventos",
	})
}

func NovoEventoPageHandler(c *fiber.Ctx) error {
	return c.Render("eventos/form", fiber.Map{
		"Title":       "Novo Evento",
		"CurrentPage": "novo-evento",
	})
}

func EditarEventoPageHandler(c *fiber.Ctx) error {
	if !idValido(c.Params("id")) {
		return fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
	}
	evento, err := database.GetEventoByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível buscar o evento")
	}
	if evento == nil {
		return fiber.NewError(fiber.StatusNotFound, "Evento não encontrado")
	}

	return c.Render("eventos/form", fiber.Map{
		"Title":       "Editar Evento",
		"CurrentPage": "eventos",
		"Evento":      evento,
	})
}
