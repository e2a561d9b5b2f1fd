package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// CalcularResumo computes the dashboard summary over the full event set.
// Pure function; always recomputed, no incremental state.
func CalcularResumo(eventos []*models.EventoFinanceiro) *models.ResumoFinanceiro {
	resumo := &models.ResumoFinanceiro{
		TotalEventos:   len(eventos),
		ValorTotal:     decimal.Zero,
		ValorPago:      decimal.Zero,
		ValorPendente:  decimal.Zero,
		ValorCancelado: decimal.Zero,
		PorFornecedor:  []models.TotalFornecedor{},
	}

	porFornecedor := map[string]*models.TotalFornecedor{}

	for _, e := range eventos {
		resumo.ValorTotal = resumo.ValorTotal.Add(e.Valor)

		switch e.Status {
		case models.StatusPago:
			resumo.EventosPagos++
			resumo.ValorPago = resumo.ValorPago.Add(e.Valor)
		case models.StatusCancelado:
			resumo.EventosCancelados++
			resumo.ValorCancelado = resumo.ValorCancelado.Add(e.Valor)
		default:
			resumo.EventosPendentes++
			resumo.ValorPendente = resumo.ValorPendente.Add(e.Valor)
		}

		t, ok := porFornecedor[e.Fornecedor]
		if !ok {
			t = &models.TotalFornecedor{Fornecedor: e.Fornecedor, Total: decimal.Zero}
			porFornecedor[e.Fornecedor] = t
		}
		t.Quantidade++
		t.Total = t.Total.Add(e.Valor)
	}

	for _, t := range porFornecedor {
		resumo.PorFornecedor = append(resumo.PorFornecedor, *t)
	}
	// Largest suppliers first, name as tiebreaker for stable chart output.
	sort.Slice(resumo.PorFornecedor, func(i, j int) bool {
		a, b := resumo.PorFornecedor[i], resumo.PorFornecedor[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Fornecedor < b.Fornecedor
	})

	return resumo
}

// OrdenarPorDataPagamento stable-sorts a copy of the events by payment date.
// Both directions are supported; the original served order is preserved in
// the input slice.
func OrdenarPorDataPagamento(eventos []*models.EventoFinanceiro, ascendente bool) []*models.EventoFinanceiro {
	ordenados := make([]*models.EventoFinanceiro, len(eventos))
	copy(ordenados, eventos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		if ascendente {
			return ordenados[i].DataPagamento.Before(ordenados[j].DataPagamento)
		}
		return ordenados[i].DataPagamento.After(ordenados[j].DataPagamento)
	})
	return ordenados
}
