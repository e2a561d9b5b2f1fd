package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

func TestExportarCSVVazio(t *testing.T) {
	conteudo, err := ExportarCSV(nil)
	if err != nil {
		t.Fatalf("ExportarCSV returned error: %v", err)
	}
	linhas := strings.Split(strings.TrimRight(conteudo, "\n"), "\n")
	if len(linhas) != 1 {
		t.Fatalf("empty export has %d lines, want header only", len(linhas))
	}
	if !strings.HasPrefix(linhas[0], "ID,Fornecedor,") {
		t.Errorf("unexpected header: %q", linhas[0])
	}
}

func TestExportarCSV(t *testing.T) {
	eventos := []*models.EventoFinanceiro{
		{
			ID:            "e1",
			Fornecedor:    "Oficina Silva",
			PlacaVeiculo:  "ABC1234",
			Valor:         decimal.RequireFromString("1234.56"),
			DataEvento:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			MotivoEvento:  "Troca de pneus, dianteiros",
			DataPagamento: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			Status:        models.StatusPago,
		},
		{
			ID:            "e2",
			Fornecedor:    `Auto "Norte"`,
			PlacaVeiculo:  "XYZ9876",
			Valor:         decimal.RequireFromString("50"),
			DataEvento:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			MotivoEvento:  "Lavagem",
			DataPagamento: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:        models.StatusPendente,
		},
	}

	conteudo, err := ExportarCSV(eventos)
	if err != nil {
		t.Fatalf("ExportarCSV returned error: %v", err)
	}

	linhas := strings.Split(strings.TrimRight(conteudo, "\n"), "\n")
	if len(linhas) != 3 {
		t.Fatalf("export has %d lines, want 3 (header + 2 rows)", len(linhas))
	}

	// Amount keeps comma-decimal formatting; the comma forces quoting.
	if !strings.Contains(linhas[1], `"1234,56"`) {
		t.Errorf("row 1 missing quoted comma-decimal amount: %q", linhas[1])
	}
	if !strings.Contains(linhas[1], `"Troca de pneus, dianteiros"`) {
		t.Errorf("row 1 missing quoted reason: %q", linhas[1])
	}
	if !strings.Contains(linhas[1], "10/03/2025") || !strings.Contains(linhas[1], "20/03/2025") {
		t.Errorf("row 1 dates not in dd/MM/yyyy: %q", linhas[1])
	}
	// Embedded quotes are doubled per RFC 4180.
	if !strings.Contains(linhas[2], `"Auto ""Norte"""`) {
		t.Errorf("row 2 quotes not escaped: %q", linhas[2])
	}
	if !strings.HasSuffix(linhas[2], "Pendente") {
		t.Errorf("row 2 should end with the status: %q", linhas[2])
	}
}
