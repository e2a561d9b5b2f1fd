package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventoFinanceiro represents one vehicle-related expense record: a supplier
// charge tied to a plate, with payment tracking and supporting documents.
type EventoFinanceiro struct {
	ID            string          `json:"id"`
	Fornecedor    string          `json:"fornecedor"`
	PlacaVeiculo  string          `json:"placa_veiculo"`
	Valor         decimal.Decimal `json:"valor"`
	DataEvento    time.Time       `json:"data_evento"`
	MotivoEvento  string          `json:"motivo_evento"`
	DataPagamento time.Time       `json:"data_pagamento"`
	Status        StatusPagamento `json:"status"`
	NotaFiscalURL *string         `json:"nota_fiscal_url,omitempty"`
	Boletos       []*Documento    `json:"boletos"`
	Comprovantes  []*Documento    `json:"comprovantes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Documento is a supporting attachment of an event. Boletos carry their due
// date in Data; comprovantes carry the payment date.
type Documento struct {
	ID        string        `json:"id"`
	EventoID  string        `json:"evento_id"`
	Tipo      TipoDocumento `json:"tipo"`
	Nome      string        `json:"nome"`
	URL       string        `json:"url"`
	Data      time.Time     `json:"data"`
	CreatedAt time.Time     `json:"created_at"`
}

// EventoUpdate carries a partial-field update. Nil fields are left untouched.
type EventoUpdate struct {
	Fornecedor    *string
	PlacaVeiculo  *string
	Valor         *decimal.Decimal
	DataEvento    *time.Time
	MotivoEvento  *string
	DataPagamento *time.Time
	Status        *StatusPagamento
	NotaFiscalURL *string
}

// FiltroEvento represents the optional filter criteria for event queries.
type FiltroEvento struct {
	DataInicio   *time.Time
	DataFim      *time.Time
	Fornecedor   string
	PlacaVeiculo string
	MotivoEvento string
}

// Vazio reports whether no criteria are set.
func (f FiltroEvento) Vazio() bool {
	return f.DataInicio == nil && f.DataFim == nil &&
		f.Fornecedor == "" && f.PlacaVeiculo == "" && f.MotivoEvento == ""
}

// OpcoesFiltro holds the distinct field values used to populate filter pickers.
type OpcoesFiltro struct {
	Fornecedores  []string `json:"fornecedores"`
	PlacasVeiculo []string `json:"placas_veiculo"`
	MotivosEvento []string `json:"motivos_evento"`
}

// ResumoFinanceiro is the dashboard summary computed over the full event set.
type ResumoFinanceiro struct {
	TotalEventos      int               `json:"total_eventos"`
	ValorTotal        decimal.Decimal   `json:"valor_total"`
	EventosPagos      int               `json:"eventos_pagos"`
	ValorPago         decimal.Decimal   `json:"valor_pago"`
	EventosPendentes  int               `json:"eventos_pendentes"`
	ValorPendente     decimal.Decimal   `json:"valor_pendente"`
	EventosCancelados int               `json:"eventos_cancelados"`
	ValorCancelado    decimal.Decimal   `json:"valor_cancelado"`
	PorFornecedor     []TotalFornecedor `json:"por_fornecedor"`
}

// TotalFornecedor groups event totals by supplier for the overview chart.
type TotalFornecedor struct {
	Fornecedor string          `json:"fornecedor"`
	Quantidade int             `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}
