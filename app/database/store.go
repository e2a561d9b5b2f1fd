package database

import (
	"database/sql"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// Store binds the query functions to one *sql.DB so callers can depend on a
// small interface instead of the package.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(e *models.EventoFinanceiro) error {
	return CreateEvento(s.DB, e)
}

func (s *Store) Update(id string, up models.EventoUpdate) (*models.EventoFinanceiro, error) {
	return UpdateEvento(s.DB, id, up)
}

func (s *Store) GetByID(id string) (*models.EventoFinanceiro, error) {
	return GetEventoByID(s.DB, id)
}

func (s *Store) InsertDocumento(d *models.Documento) error {
	return InsertDocumento(s.DB, d)
}
