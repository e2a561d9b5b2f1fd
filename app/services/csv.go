package services

import (
	"bytes"
	"encoding/csv"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// dd/MM/yyyy, the pt-BR short date format.
const formatoData = "02/01/2006"

var cabecalhoCSV = []string{
	"ID",
	"Fornecedor",
	"Placa do Veículo",
	"Valor",
	"Data do Evento",
	"Motivo do Evento",
	"Data de Pagamento",
	"Status",
}

// ExportarCSV serializes the given events as CSV: a header row followed by one
// row per event. Amounts keep comma-decimal formatting; fields containing
// commas or quotes are escaped per RFC 4180 by the encoder.
func ExportarCSV(eventos []*models.EventoFinanceiro) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(cabecalhoCSV); err != nil {
		return "", err
	}
	for _, e := range eventos {
		row := []string{
			e.ID,
			e.Fornecedor,
			e.PlacaVeiculo,
			FormatarValor(e.Valor),
			e.DataEvento.Format(formatoData),
			e.MotivoEvento,
			e.DataPagamento.Format(formatoData),
			string(e.Status),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
