package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vistoriaguardioes/financeiro/app/logger"
	"github.com/vistoriaguardioes/financeiro/app/models"
	"github.com/vistoriaguardioes/financeiro/app/storage"
)

// EventoStore is the subset of the record store the form controller needs.
type EventoStore interface {
	Create(e *models.EventoFinanceiro) error
	Update(id string, up models.EventoUpdate) (*models.EventoFinanceiro, error)
	GetByID(id string) (*models.EventoFinanceiro, error)
	InsertDocumento(d *models.Documento) error
}

// ArquivoUploader is the subset of the attachment bucket the controller needs.
type ArquivoUploader interface {
	Upload(r io.Reader, nome string, tipo models.TipoDocumento, eventoID string) (string, error)
	Remove(url string) error
}

// Anexo is one pending file attachment. Data is the due date for boletos and
// the payment date for comprovantes; it is ignored for the NFe.
type Anexo struct {
	Nome     string
	Conteudo io.Reader
	Data     time.Time
}

// Submissao is one form submission: the field edits plus pending attachments.
type Submissao struct {
	EventoID     string // empty when creating a new event
	Campos       EventoInput
	NFe          *Anexo
	Boletos      []*Anexo
	Comprovantes []*Anexo
}

// UploadErro reports one isolated attachment failure. Uploads are independent:
// one failing does not abort the others nor the record write.
type UploadErro struct {
	Arquivo  string               `json:"arquivo"`
	Tipo     models.TipoDocumento `json:"tipo"`
	Mensagem string               `json:"mensagem"`
}

// ErroValidacao carries field-level validation messages.
type ErroValidacao struct {
	Campos map[string]string
}

func (e *ErroValidacao) Error() string {
	msgs := make([]string, 0, len(e.Campos))
	for campo, msg := range e.Campos {
		msgs = append(msgs, campo+": "+msg)
	}
	return "invalid submission: " + strings.Join(msgs, "; ")
}

var (
	// ErrEventoNaoEncontrado is returned when editing an id that no longer exists.
	ErrEventoNaoEncontrado = errors.New("event not found")
	// ErrSubmissaoEmAndamento guards against double submission of one record.
	ErrSubmissaoEmAndamento = errors.New("a submission for this event is already in flight")
)

// EventosService coordinates the multi-step save: persist the record first to
// obtain an id, then upload attachments, then patch the collected URLs.
type EventosService struct {
	store   EventoStore
	uploads ArquivoUploader

	emAndamento sync.Map // evento id -> struct{}
}

func NewEventosService(store EventoStore, uploads ArquivoUploader) *EventosService {
	return &EventosService{store: store, uploads: uploads}
}

// Salvar runs one full form submission and returns the persisted event along
// with any isolated upload failures. The two-phase write is not atomic; when
// the final URL patch fails, uploaded files are removed again so the bucket
// holds no orphans.
func (s *EventosService) Salvar(sub Submissao) (*models.EventoFinanceiro, []UploadErro, error) {
	if erros := ValidarEvento(sub.Campos); len(erros) > 0 {
		return nil, nil, &ErroValidacao{Campos: erros}
	}

	valor, err := ParseValor(sub.Campos.Valor)
	if err != nil {
		return nil, nil, &ErroValidacao{Campos: map[string]string{"valor": "Valor inválido"}}
	}
	placa := NormalizarPlaca(sub.Campos.PlacaVeiculo)
	status := models.StatusPagamento(sub.Campos.Status)
	if status == "" {
		status = models.StatusPendente
	}

	criando := sub.EventoID == ""
	eventoID := sub.EventoID

	if !criando {
		if _, carregado := s.emAndamento.LoadOrStore(eventoID, struct{}{}); carregado {
			return nil, nil, ErrSubmissaoEmAndamento
		}
		defer s.emAndamento.Delete(eventoID)
	}

	if criando {
		// Persist first so uploads have a real id to namespace under.
		evento := &models.EventoFinanceiro{
			Fornecedor:    strings.TrimSpace(sub.Campos.Fornecedor),
			PlacaVeiculo:  placa,
			Valor:         valor,
			DataEvento:    *sub.Campos.DataEvento,
			MotivoEvento:  strings.TrimSpace(sub.Campos.MotivoEvento),
			DataPagamento: *sub.Campos.DataPagamento,
			Status:        status,
		}
		if err := s.store.Create(evento); err != nil {
			return nil, nil, fmt.Errorf("failed to create event: %w", err)
		}
		eventoID = evento.ID
	} else {
		fornecedor := strings.TrimSpace(sub.Campos.Fornecedor)
		motivo := strings.TrimSpace(sub.Campos.MotivoEvento)
		atualizado, err := s.store.Update(eventoID, models.EventoUpdate{
			Fornecedor:    &fornecedor,
			PlacaVeiculo:  &placa,
			Valor:         &valor,
			DataEvento:    sub.Campos.DataEvento,
			MotivoEvento:  &motivo,
			DataPagamento: sub.Campos.DataPagamento,
			Status:        &status,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update event: %w", err)
		}
		if atualizado == nil {
			return nil, nil, ErrEventoNaoEncontrado
		}
	}

	avisos := s.anexarArquivos(eventoID, sub)

	evento, err := s.store.GetByID(eventoID)
	if err != nil {
		return nil, avisos, fmt.Errorf("failed to reload event: %w", err)
	}
	if evento == nil {
		return nil, avisos, ErrEventoNaoEncontrado
	}
	return evento, avisos, nil
}

// anexarArquivos uploads every pending attachment, each failure isolated, and
// records the resulting URLs. Document rows go straight into the store; the
// NFe URL is patched onto the event afterwards.
func (s *EventosService) anexarArquivos(eventoID string, sub Submissao) []UploadErro {
	log := logger.WithComponent("eventos-service")
	avisos := []UploadErro{}

	if sub.NFe != nil {
		url, err := s.uploads.Upload(sub.NFe.Conteudo, sub.NFe.Nome, models.DocumentoNFe, eventoID)
		if err != nil {
			log.Error().Err(err).Str("evento", eventoID).Msg("NFe upload failed")
			avisos = append(avisos, UploadErro{Arquivo: sub.NFe.Nome, Tipo: models.DocumentoNFe, Mensagem: err.Error()})
		} else if url != "" {
			atualizado, err := s.store.Update(eventoID, models.EventoUpdate{NotaFiscalURL: &url})
			if err == nil && atualizado == nil {
				// The event was deleted between upload and patch.
				err = ErrEventoNaoEncontrado
			}
			if err != nil {
				// Patch failed: remove the uploaded file so it is not orphaned.
				log.Error().Err(err).Str("evento", eventoID).Msg("NFe patch failed, removing upload")
				if rmErr := s.uploads.Remove(url); rmErr != nil {
					log.Warn().Err(rmErr).Str("url", url).Msg("compensating removal failed")
				}
				avisos = append(avisos, UploadErro{Arquivo: sub.NFe.Nome, Tipo: models.DocumentoNFe, Mensagem: err.Error()})
			}
		}
	}

	anexar := func(anexos []*Anexo, tipo models.TipoDocumento) {
		for _, a := range anexos {
			if a == nil {
				continue
			}
			url, err := s.uploads.Upload(a.Conteudo, a.Nome, tipo, eventoID)
			if err != nil {
				log.Error().Err(err).Str("evento", eventoID).Str("arquivo", a.Nome).Msg("upload failed")
				avisos = append(avisos, UploadErro{Arquivo: a.Nome, Tipo: tipo, Mensagem: err.Error()})
				continue
			}
			if url == "" {
				continue
			}
			doc := &models.Documento{
				ID:       uuid.NewString(),
				EventoID: eventoID,
				Tipo:     tipo,
				Nome:     a.Nome,
				URL:      url,
				Data:     a.Data,
			}
			if err := s.store.InsertDocumento(doc); err != nil {
				log.Error().Err(err).Str("evento", eventoID).Str("arquivo", a.Nome).Msg("document insert failed, removing upload")
				if rmErr := s.uploads.Remove(url); rmErr != nil {
					log.Warn().Err(rmErr).Str("url", url).Msg("compensating removal failed")
				}
				avisos = append(avisos, UploadErro{Arquivo: a.Nome, Tipo: tipo, Mensagem: err.Error()})
			}
		}
	}
	anexar(sub.Boletos, models.DocumentoBoleto)
	anexar(sub.Comprovantes, models.DocumentoComprovante)

	return avisos
}

// interface check for the concrete uploader
var _ ArquivoUploader = (*storage.Uploader)(nil)
