package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// EventoInput carries the raw form fields of a create/edit submission.
// Valor arrives as locale-formatted comma-decimal text ("1.234,56").
type EventoInput struct {
	Fornecedor    string
	PlacaVeiculo  string
	Valor         string
	DataEvento    *time.Time
	MotivoEvento  string
	DataPagamento *time.Time
	Status        string
}

// ValidarEvento checks the form fields and returns a map of field name to
// message. An empty map means the input is valid.
func ValidarEvento(in EventoInput) map[string]string {
	erros := map[string]string{}

	if strings.TrimSpace(in.Fornecedor) == "" {
		erros["fornecedor"] = "Fornecedor é obrigatório"
	}
	if len(strings.TrimSpace(in.PlacaVeiculo)) < 7 {
		erros["placa_veiculo"] = "Placa do veículo inválida"
	}
	if strings.TrimSpace(in.Valor) == "" {
		erros["valor"] = "Valor é obrigatório"
	} else if v, err := ParseValor(in.Valor); err != nil {
		erros["valor"] = "Valor inválido"
	} else if v.IsNegative() {
		erros["valor"] = "Valor não pode ser negativo"
	}
	if in.DataEvento == nil {
		erros["data_evento"] = "Data do evento é obrigatória"
	}
	if strings.TrimSpace(in.MotivoEvento) == "" {
		erros["motivo_evento"] = "Motivo do evento é obrigatório"
	}
	if in.DataPagamento == nil {
		erros["data_pagamento"] = "Data de pagamento é obrigatória"
	}
	if in.Status != "" && !models.StatusPagamento(in.Status).Valido() {
		erros["status"] = "Status inválido"
	}

	return erros
}

// ParseValor converts comma-decimal currency text into a decimal value.
// Thousand separators ("1.234,56") are accepted; plain dot-decimal input is
// parsed as-is.
func ParseValor(texto string) (decimal.Decimal, error) {
	s := strings.TrimSpace(texto)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// FormatarValor renders a decimal back as comma-decimal text with two-digit
// cent precision ("1234.5" -> "1234,50").
func FormatarValor(v decimal.Decimal) string {
	return strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// NormalizarPlaca uppercases and trims a vehicle plate. Plates are always
// stored and compared in uppercase.
func NormalizarPlaca(placa string) string {
	return strings.ToUpper(strings.TrimSpace(placa))
}
