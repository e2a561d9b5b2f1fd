package eventos

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/config"
	"github.com/vistoriaguardioes/financeiro/app/database"
	"github.com/vistoriaguardioes/financeiro/app/logger"
	"github.com/vistoriaguardioes/financeiro/app/models"
	"github.com/vistoriaguardioes/financeiro/app/services"
)

// GetEventosAPI returns the event list, optionally filtered and sorted.
// Query params: data_inicio, data_fim, fornecedor, placa, motivo,
// ordenar=data_pagamento, direcao=asc|desc.
func GetEventosAPI(c *fiber.Ctx) error {
	filtro := parseFiltro(c)

	var (
		eventos []*models.EventoFinanceiro
		err     error
	)
	if filtro.Vazio() {
		eventos, err = database.GetAllEventos(config.GetDB())
	} else {
		eventos, err = database.FiltrarEventos(config.GetDB(), filtro)
	}
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("failed to load events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível buscar os eventos financeiros",
		})
	}

	if c.Query("ordenar") == "data_pagamento" {
		eventos = services.OrdenarPorDataPagamento(eventos, c.Query("direcao") == "asc")
	}

	return c.JSON(eventos)
}

func GetEventoAPI(c *fiber.Ctx) error {
	if !idValido(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	evento, err := database.GetEventoByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to load event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível buscar o evento",
		})
	}
	if evento == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	return c.JSON(evento)
}

func GetEventosPorPlacaAPI(c *fiber.Ctx) error {
	eventos, err := database.GetEventosPorPlaca(config.GetDB(), c.Params("placa"))
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("failed to load plate history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível buscar o histórico do veículo",
		})
	}
	return c.JSON(eventos)
}

func GetOpcoesFiltroAPI(c *fiber.Ctx) error {
	opcoes, err := database.GetOpcoesFiltros(config.GetDB())
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("failed to load filter options")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível buscar as opções de filtro",
		})
	}
	return c.JSON(opcoes)
}

func CreateEventoAPI(c *fiber.Ctx) error {
	sub, fechar, err := parseSubmissao(c)
	defer fechar()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	evento, avisos, err := servico.Salvar(*sub)
	if err != nil {
		return traduzErroSalvar(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"evento": evento, "avisos": avisos})
}

func UpdateEventoAPI(c *fiber.Ctx) error {
	sub, fechar, err := parseSubmissao(c)
	defer fechar()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !idValido(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	sub.EventoID = c.Params("id")

	evento, avisos, err := servico.Salvar(*sub)
	if err != nil {
		return traduzErroSalvar(c, err)
	}
	return c.JSON(fiber.Map{"evento": evento, "avisos": avisos})
}

// UpdateStatusAPI persists a status mutation from the list view.
func UpdateStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.StatusPagamento `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.Status.Valido() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status inválido"})
	}
	if !idValido(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}

	evento, err := database.UpdateEvento(config.GetDB(), c.Params("id"), models.EventoUpdate{Status: &req.Status})
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to update status")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível atualizar o status",
		})
	}
	if evento == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	return c.JSON(evento)
}

func DeleteEventoAPI(c *fiber.Ctx) error {
	if !idValido(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	ok, err := database.DeleteEvento(config.GetDB(), c.Params("id"))
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to delete event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível excluir o evento",
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportarCSVAPI downloads the current (optionally filtered) set as CSV.
func ExportarCSVAPI(c *fiber.Ctx) error {
	filtro := parseFiltro(c)

	var (
		eventos []*models.EventoFinanceiro
		err     error
	)
	if filtro.Vazio() {
		eventos, err = database.GetAllEventos(config.GetDB())
	} else {
		eventos, err = database.FiltrarEventos(config.GetDB(), filtro)
	}
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("failed to load events for export")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível exportar os dados",
		})
	}

	conteudo, err := services.ExportarCSV(eventos)
	if err != nil {
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("csv serialization failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível exportar os dados",
		})
	}

	nome := fmt.Sprintf("eventos-financeiros-%s.csv", time.Now().Format("02-01-2006"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nome))
	return c.SendString(conteudo)
}

// traduzErroSalvar maps service errors onto HTTP responses. Backend messages
// are logged; clients get the generic translation.
func traduzErroSalvar(c *fiber.Ctx, err error) error {
	var valErr *services.ErroValidacao
	switch {
	case errors.As(err, &valErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Dados inválidos",
			"campos": valErr.Campos,
		})
	case errors.Is(err, services.ErrEventoNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evento não encontrado"})
	case errors.Is(err, services.ErrSubmissaoEmAndamento):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Já existe um envio em andamento"})
	default:
		log := logger.WithComponent("eventos")
		log.Error().Err(err).Msg("failed to save event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Ocorreu um erro ao processar os dados",
		})
	}
}
