package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// Column list shared by every event query. The table uses snake_case names;
// mapping to the Go model happens in scanEvento.
const eventoColumns = `id, fornecedor, placa_veiculo, valor, data_evento,
		motivo_evento, data_pagamento, status, nota_fiscal_url, created_at, updated_at`

func scanEvento(row interface{ Scan(...any) error }) (*models.EventoFinanceiro, error) {
	e := &models.EventoFinanceiro{}
	var notaFiscal sql.NullString
	err := row.Scan(
		&e.ID, &e.Fornecedor, &e.PlacaVeiculo, &e.Valor, &e.DataEvento,
		&e.MotivoEvento, &e.DataPagamento, &e.Status, &notaFiscal,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notaFiscal.Valid {
		e.NotaFiscalURL = &notaFiscal.String
	}
	e.Boletos = []*models.Documento{}
	e.Comprovantes = []*models.Documento{}
	return e, nil
}

// GetAllEventos returns every event, newest event date first.
func GetAllEventos(db *sql.DB) ([]*models.EventoFinanceiro, error) {
	query := fmt.Sprintf(`SELECT %s FROM eventos_financeiros ORDER BY data_evento DESC`, eventoColumns)

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventos := []*models.EventoFinanceiro{} // empty slice for non-null JSON
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachDocumentos(db, eventos); err != nil {
		return nil, err
	}
	return eventos, nil
}

// GetEventoByID returns the event or (nil, nil) when no record exists.
func GetEventoByID(db *sql.DB, id string) (*models.EventoFinanceiro, error) {
	query := fmt.Sprintf(`SELECT %s FROM eventos_financeiros WHERE id = $1`, eventoColumns)

	e, err := scanEvento(db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := attachDocumentos(db, []*models.EventoFinanceiro{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEvento persists a new event. ID and timestamps are assigned by the
// database and written back into e.
func CreateEvento(db *sql.DB, e *models.EventoFinanceiro) error {
	query := `INSERT INTO eventos_financeiros
			  (fornecedor, placa_veiculo, valor, data_evento, motivo_evento,
			   data_pagamento, status, nota_fiscal_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	var notaFiscal any
	if e.NotaFiscalURL != nil {
		notaFiscal = *e.NotaFiscalURL
	}
	return db.QueryRow(query,
		e.Fornecedor, e.PlacaVeiculo, e.Valor, e.DataEvento,
		e.MotivoEvento, e.DataPagamento, e.Status, notaFiscal,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateEvento applies a partial-field update and returns the updated record,
// or (nil, nil) when the id does not exist. Last write wins.
func UpdateEvento(db *sql.DB, id string, up models.EventoUpdate) (*models.EventoFinanceiro, error) {
	sets := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if up.Fornecedor != nil {
		sets = append(sets, "fornecedor = "+arg(*up.Fornecedor))
	}
	if up.PlacaVeiculo != nil {
		sets = append(sets, "placa_veiculo = "+arg(*up.PlacaVeiculo))
	}
	if up.Valor != nil {
		sets = append(sets, "valor = "+arg(*up.Valor))
	}
	if up.DataEvento != nil {
		sets = append(sets, "data_evento = "+arg(*up.DataEvento))
	}
	if up.MotivoEvento != nil {
		sets = append(sets, "motivo_evento = "+arg(*up.MotivoEvento))
	}
	if up.DataPagamento != nil {
		sets = append(sets, "data_pagamento = "+arg(*up.DataPagamento))
	}
	if up.Status != nil {
		sets = append(sets, "status = "+arg(*up.Status))
	}
	if up.NotaFiscalURL != nil {
		sets = append(sets, "nota_fiscal_url = "+arg(*up.NotaFiscalURL))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE eventos_financeiros SET %s WHERE id = %s RETURNING %s`,
		strings.Join(sets, ", "), arg(id), eventoColumns)

	e, err := scanEvento(db.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := attachDocumentos(db, []*models.EventoFinanceiro{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEvento removes the event permanently; documents cascade.
func DeleteEvento(db *sql.DB, id string) (bool, error) {
	result, err := db.Exec(`DELETE FROM eventos_financeiros WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// FiltrarEventos returns the events matching the given criteria, newest event
// date first. An empty filter behaves like GetAllEventos.
func FiltrarEventos(db *sql.DB, f models.FiltroEvento) ([]*models.EventoFinanceiro, error) {
	where, args := filtroWhere(f)
	query := fmt.Sprintf(`SELECT %s FROM eventos_financeiros %s ORDER BY data_evento DESC`,
		eventoColumns, where)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventos := []*models.EventoFinanceiro{}
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachDocumentos(db, eventos); err != nil {
		return nil, err
	}
	return eventos, nil
}

// filtroWhere builds the WHERE clause for FiltrarEventos. The upper date bound
// is extended to the end of its day so the whole day is included.
func filtroWhere(f models.FiltroEvento) (string, []any) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.DataInicio != nil {
		conds = append(conds, "data_evento >= "+arg(*f.DataInicio))
	}
	if f.DataFim != nil {
		conds = append(conds, "data_evento <= "+arg(FimDoDia(*f.DataFim)))
	}
	if f.Fornecedor != "" {
		conds = append(conds, "fornecedor = "+arg(f.Fornecedor))
	}
	if f.PlacaVeiculo != "" {
		conds = append(conds, "placa_veiculo = "+arg(f.PlacaVeiculo))
	}
	if f.MotivoEvento != "" {
		conds = append(conds, "motivo_evento ILIKE "+arg("%"+escapeLike(f.MotivoEvento)+"%"))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes the LIKE metacharacters so filter text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// FimDoDia returns the last instant of t's calendar day.
func FimDoDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// GetOpcoesFiltros collects the distinct suppliers, plates and reasons across
// all events for the filter pickers.
func GetOpcoesFiltros(db *sql.DB) (*models.OpcoesFiltro, error) {
	rows, err := db.Query(`SELECT fornecedor, placa_veiculo, motivo_evento FROM eventos_financeiros`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opcoes := &models.OpcoesFiltro{
		Fornecedores:  []string{},
		PlacasVeiculo: []string{},
		MotivosEvento: []string{},
	}
	vistosFornecedor := map[string]bool{}
	vistosPlaca := map[string]bool{}
	vistosMotivo := map[string]bool{}

	for rows.Next() {
		var fornecedor, placa, motivo string
		if err := rows.Scan(&fornecedor, &placa, &motivo); err != nil {
			return nil, err
		}
		if !vistosFornecedor[fornecedor] {
			vistosFornecedor[fornecedor] = true
			opcoes.Fornecedores = append(opcoes.Fornecedores, fornecedor)
		}
		if !vistosPlaca[placa] {
			vistosPlaca[placa] = true
			opcoes.PlacasVeiculo = append(opcoes.PlacasVeiculo, placa)
		}
		if !vistosMotivo[motivo] {
			vistosMotivo[motivo] = true
			opcoes.MotivosEvento = append(opcoes.MotivosEvento, motivo)
		}
	}
	return opcoes, rows.Err()
}

// GetEventosPorPlaca returns the expense history of one vehicle, newest first.
// The plate is compared in its stored uppercase form.
func GetEventosPorPlaca(db *sql.DB, placa string) ([]*models.EventoFinanceiro, error) {
	return FiltrarEventos(db, models.FiltroEvento{PlacaVeiculo: strings.ToUpper(placa)})
}
