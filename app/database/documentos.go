package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/vistoriaguardioes/financeiro/app/models"
)

// InsertDocumento persists one attachment row. The id is assigned by the
// caller; created_at is assigned by the database and written back into d.
func InsertDocumento(db *sql.DB, d *models.Documento) error {
	query := `INSERT INTO evento_documentos (id, evento_id, tipo, nome, url, data, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW())
			  RETURNING created_at`

	return db.QueryRow(query, d.ID, d.EventoID, d.Tipo, d.Nome, d.URL, d.Data).
		Scan(&d.CreatedAt)
}

// GetDocumentosPorEvento returns the attachments of one event, oldest first.
func GetDocumentosPorEvento(db *sql.DB, eventoID string) ([]*models.Documento, error) {
	query := `SELECT id, evento_id, tipo, nome, url, data, created_at
			  FROM evento_documentos
			  WHERE evento_id = $1
			  ORDER BY created_at ASC`

	rows, err := db.Query(query, eventoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*models.Documento{}
	for rows.Next() {
		d := &models.Documento{}
		if err := rows.Scan(&d.ID, &d.EventoID, &d.Tipo, &d.Nome, &d.URL, &d.Data, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// attachDocumentos loads the boletos and comprovantes of the given events in
// one query and distributes them onto the models.
func attachDocumentos(db *sql.DB, eventos []*models.EventoFinanceiro) error {
	if len(eventos) == 0 {
		return nil
	}

	porID := make(map[string]*models.EventoFinanceiro, len(eventos))
	ids := make([]string, 0, len(eventos))
	for _, e := range eventos {
		porID[e.ID] = e
		ids = append(ids, e.ID)
	}

	query := `SELECT id, evento_id, tipo, nome, url, data, created_at
			  FROM evento_documentos
			  WHERE evento_id = ANY($1)
			  ORDER BY created_at ASC`

	rows, err := db.Query(query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		d := &models.Documento{}
		if err := rows.Scan(&d.ID, &d.EventoID, &d.Tipo, &d.Nome, &d.URL, &d.Data, &d.CreatedAt); err != nil {
			return err
		}
		e, ok := porID[d.EventoID]
		if !ok {
			continue
		}
		switch d.Tipo {
		case models.DocumentoBoleto:
			e.Boletos = append(e.Boletos, d)
		case models.DocumentoComprovante:
			e.Comprovantes = append(e.Comprovantes, d)
		}
	}
	return rows.Err()
}
