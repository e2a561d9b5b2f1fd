package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseValor(t *testing.T) {
	cases := []struct {
		name    string
		texto   string
		want    string
		wantErr bool
	}{
		{name: "comma decimal", texto: "450,75", want: "450.75"},
		{name: "thousands and comma", texto: "1.234,56", want: "1234.56"},
		{name: "plain integer", texto: "300", want: "300"},
		{name: "dot decimal passthrough", texto: "99.90", want: "99.9"},
		{name: "surrounding spaces", texto: " 12,00 ", want: "12"},
		{name: "empty", texto: "", wantErr: true},
		{name: "garbage", texto: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseValor(tc.texto)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseValor(%q) expected error, got %s", tc.texto, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValor(%q) returned error: %v", tc.texto, err)
			}
			want, _ := decimal.NewFromString(tc.want)
			if !got.Equal(want) {
				t.Errorf("ParseValor(%q) = %s, want %s", tc.texto, got, want)
			}
		})
	}
}

func TestFormatarValor(t *testing.T) {
	v := decimal.RequireFromString("1234.5")
	if got := FormatarValor(v); got != "1234,50" {
		t.Errorf("FormatarValor(1234.5) = %q, want %q", got, "1234,50")
	}
	if got := FormatarValor(decimal.Zero); got != "0,00" {
		t.Errorf("FormatarValor(0) = %q, want %q", got, "0,00")
	}
}

func TestNormalizarPlaca(t *testing.T) {
	if got := NormalizarPlaca(" abc1234 "); got != "ABC1234" {
		t.Errorf("NormalizarPlaca = %q, want ABC1234", got)
	}
}

func validInput() EventoInput {
	dataEvento := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dataPagamento := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	return EventoInput{
		Fornecedor:    "Acme",
		PlacaVeiculo:  "abc1234",
		Valor:         "450,75",
		DataEvento:    &dataEvento,
		MotivoEvento:  "Troca de pneus",
		DataPagamento: &dataPagamento,
		Status:        "Pendente",
	}
}

func TestValidarEvento(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*EventoInput)
		wantCampo string
	}{
		{name: "valid", mutate: func(in *EventoInput) {}},
		{name: "missing supplier", mutate: func(in *EventoInput) { in.Fornecedor = "  " }, wantCampo: "fornecedor"},
		{name: "short plate", mutate: func(in *EventoInput) { in.PlacaVeiculo = "AB1234" }, wantCampo: "placa_veiculo"},
		{name: "empty amount", mutate: func(in *EventoInput) { in.Valor = "" }, wantCampo: "valor"},
		{name: "unparseable amount", mutate: func(in *EventoInput) { in.Valor = "x,yz" }, wantCampo: "valor"},
		{name: "negative amount", mutate: func(in *EventoInput) { in.Valor = "-10,00" }, wantCampo: "valor"},
		{name: "missing event date", mutate: func(in *EventoInput) { in.DataEvento = nil }, wantCampo: "data_evento"},
		{name: "missing reason", mutate: func(in *EventoInput) { in.MotivoEvento = "" }, wantCampo: "motivo_evento"},
		{name: "missing payment date", mutate: func(in *EventoInput) { in.DataPagamento = nil }, wantCampo: "data_pagamento"},
		{name: "unknown status", mutate: func(in *EventoInput) { in.Status = "Atrasado" }, wantCampo: "status"},
		{name: "empty status allowed", mutate: func(in *EventoInput) { in.Status = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			erros := ValidarEvento(in)
			if tc.wantCampo == "" {
				if len(erros) != 0 {
					t.Fatalf("expected no errors, got %v", erros)
				}
				return
			}
			if _, ok := erros[tc.wantCampo]; !ok {
				t.Errorf("expected error on field %q, got %v", tc.wantCampo, erros)
			}
		})
	}
}
