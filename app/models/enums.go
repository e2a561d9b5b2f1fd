package models

// StatusPagamento defines the payment status of a financial event.
// The stored status field is authoritative; the legacy inference from the
// presence of an invoice URL was retired by a data migration.
type StatusPagamento string

const (
	StatusPendente  StatusPagamento = "Pendente"
	StatusPago      StatusPagamento = "Pago"
	StatusCancelado StatusPagamento = "Cancelado"
)

// Valido reports whether s is one of the enumerated statuses.
func (s StatusPagamento) Valido() bool {
	switch s {
	case StatusPendente, StatusPago, StatusCancelado:
		return true
	}
	return false
}

// TipoDocumento defines the kind of an uploaded document.
type TipoDocumento string

const (
	DocumentoNFe         TipoDocumento = "nfe"
	DocumentoBoleto      TipoDocumento = "boleto"
	DocumentoComprovante TipoDocumento = "comprovante"
)

// Valido reports whether t is one of the enumerated document kinds.
func (t TipoDocumento) Valido() bool {
	switch t {
	case DocumentoNFe, DocumentoBoleto, DocumentoComprovante:
		return true
	}
	return false
}
