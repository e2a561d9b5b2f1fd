package eventos

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vistoriaguardioes/financeiro/app/models"
	"github.com/vistoriaguardioes/financeiro/app/services"
)

// idValido reports whether a path id is a well-formed UUID. A malformed id can
// never match a record, so handlers answer not-found without querying.
func idValido(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// parseFiltro reads the filter criteria from query params. Dates accept
// RFC 3339 or plain yyyy-mm-dd.
func parseFiltro(c *fiber.Ctx) models.FiltroEvento {
	return models.FiltroEvento{
		DataInicio:   parseData(c.Query("data_inicio")),
		DataFim:      parseData(c.Query("data_fim")),
		Fornecedor:   c.Query("fornecedor"),
		PlacaVeiculo: c.Query("placa"),
		MotivoEvento: c.Query("motivo"),
	}
}

func parseData(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseSubmissao builds a form submission from a multipart request: scalar
// fields plus the pending NFe, boletos (paired with due dates) and
// comprovantes (paired with payment dates). The returned closer releases the
// opened file handles and must always be called.
func parseSubmissao(c *fiber.Ctx) (*services.Submissao, func(), error) {
	abertos := []io.Closer{}
	fechar := func() {
		for _, f := range abertos {
			f.Close()
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fechar, err
	}

	valor := func(campo string) string {
		if vs := form.Value[campo]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	sub := &services.Submissao{
		Campos: services.EventoInput{
			Fornecedor:    valor("fornecedor"),
			PlacaVeiculo:  valor("placa_veiculo"),
			Valor:         valor("valor"),
			DataEvento:    parseData(valor("data_evento")),
			MotivoEvento:  valor("motivo_evento"),
			DataPagamento: parseData(valor("data_pagamento")),
			Status:        valor("status"),
		},
	}

	abrir := func(fh *multipart.FileHeader, data time.Time) (*services.Anexo, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		abertos = append(abertos, f)
		return &services.Anexo{Nome: fh.Filename, Conteudo: f, Data: data}, nil
	}

	if nfes := form.File["nfe"]; len(nfes) > 0 {
		anexo, err := abrir(nfes[0], time.Time{})
		if err != nil {
			return nil, fechar, err
		}
		sub.NFe = anexo
	}

	anexarTodos := func(campoArquivo, campoData string) ([]*services.Anexo, error) {
		arquivos := form.File[campoArquivo]
		datas := form.Value[campoData]
		anexos := make([]*services.Anexo, 0, len(arquivos))
		for i, fh := range arquivos {
			data := time.Time{}
			if i < len(datas) {
				if d := parseData(datas[i]); d != nil {
					data = *d
				}
			}
			anexo, err := abrir(fh, data)
			if err != nil {
				return nil, err
			}
			anexos = append(anexos, anexo)
		}
		return anexos, nil
	}

	if sub.Boletos, err = anexarTodos("boletos", "boleto_datas"); err != nil {
		return nil, fechar, err
	}
	if sub.Comprovantes, err = anexarTodos("comprovantes", "comprovante_datas"); err != nil {
		return nil, fechar, err
	}

	return sub, fechar, nil
}
