package database

import (
	"testing"
	"time"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

func TestFimDoDia(t *testing.T) {
	meio := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	fim := FimDoDia(meio)

	if fim.Year() != 2025 || fim.Month() != 3 || fim.Day() != 10 {
		t.Fatalf("FimDoDia changed the calendar day: %s", fim)
	}
	if fim.Hour() != 23 || fim.Minute() != 59 || fim.Second() != 59 {
		t.Errorf("FimDoDia = %s, want 23:59:59", fim)
	}
	if !fim.After(meio) {
		t.Error("FimDoDia should be after any instant within the day")
	}

	inicio := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !fim.Before(inicio) {
		t.Error("FimDoDia should stay before the next day")
	}
}

func TestFiltroWhere(t *testing.T) {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		filtro    models.FiltroEvento
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "empty",
			filtro:    models.FiltroEvento{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "date range",
			filtro:    models.FiltroEvento{DataInicio: &inicio, DataFim: &fim},
			wantWhere: "WHERE data_evento >= $1 AND data_evento <= $2",
			wantArgs:  2,
		},
		{
			name:      "supplier and plate",
			filtro:    models.FiltroEvento{Fornecedor: "Oficina Silva", PlacaVeiculo: "ABC1234"},
			wantWhere: "WHERE fornecedor = $1 AND placa_veiculo = $2",
			wantArgs:  2,
		},
		{
			name:      "reason is a partial match",
			filtro:    models.FiltroEvento{MotivoEvento: "pneu"},
			wantWhere: "WHERE motivo_evento ILIKE $1",
			wantArgs:  1,
		},
		{
			name: "all criteria",
			filtro: models.FiltroEvento{
				DataInicio:   &inicio,
				DataFim:      &fim,
				Fornecedor:   "Oficina Silva",
				PlacaVeiculo: "ABC1234",
				MotivoEvento: "pneu",
			},
			wantWhere: "WHERE data_evento >= $1 AND data_evento <= $2 AND fornecedor = $3 AND placa_veiculo = $4 AND motivo_evento ILIKE $5",
			wantArgs:  5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := filtroWhere(tc.filtro)
			if where != tc.wantWhere {
				t.Errorf("where = %q, want %q", where, tc.wantWhere)
			}
			if len(args) != tc.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tc.wantArgs)
			}
		})
	}
}

func TestFiltroWhereEstendeDataFim(t *testing.T) {
	fim := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	_, args := filtroWhere(models.FiltroEvento{DataFim: &fim})

	if len(args) != 1 {
		t.Fatalf("len(args) = %d, want 1", len(args))
	}
	limite, ok := args[0].(time.Time)
	if !ok {
		t.Fatalf("arg is %T, want time.Time", args[0])
	}
	if limite.Hour() != 23 || limite.Minute() != 59 || limite.Second() != 59 {
		t.Errorf("upper bound = %s, want end of day", limite)
	}
	if limite.Day() != 31 {
		t.Errorf("upper bound moved to another day: %s", limite)
	}
}

func TestFiltroWhereEscapaCuringas(t *testing.T) {
	cases := []struct {
		motivo string
		want   string
	}{
		{motivo: "100%", want: `%100\%%`},
		{motivo: "pneu_dianteiro", want: `%pneu\_dianteiro%`},
		{motivo: `c:\temp`, want: `%c:\\temp%`},
		{motivo: "pneu", want: "%pneu%"},
	}

	for _, tc := range cases {
		_, args := filtroWhere(models.FiltroEvento{MotivoEvento: tc.motivo})
		if len(args) != 1 {
			t.Fatalf("filtroWhere(%q): len(args) = %d, want 1", tc.motivo, len(args))
		}
		if args[0] != tc.want {
			t.Errorf("filtroWhere(%q) pattern = %q, want %q", tc.motivo, args[0], tc.want)
		}
	}
}

func TestFiltroVazio(t *testing.T) {
	if !(models.FiltroEvento{}).Vazio() {
		t.Error("zero filter should be empty")
	}
	agora := time.Now()
	if (models.FiltroEvento{DataInicio: &agora}).Vazio() {
		t.Error("filter with a start date should not be empty")
	}
	if (models.FiltroEvento{MotivoEvento: "pneu"}).Vazio() {
		t.Error("filter with a reason should not be empty")
	}
}
