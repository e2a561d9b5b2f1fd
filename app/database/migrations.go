package database

import (
	"database/sql"

	"github.com/vistoriaguardioes/financeiro/app/logger"
)

// RunMigrations creates the schema when missing and applies incremental
// updates, including the one-time status backfill.
func RunMigrations(db *sql.DB) error {
	log := logger.WithComponent("migrations")
	log.Info().Msg("running database migrations")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS eventos_financeiros (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fornecedor TEXT NOT NULL,
			placa_veiculo VARCHAR(10) NOT NULL,
			valor NUMERIC(12,2) NOT NULL CHECK (valor >= 0),
			data_evento TIMESTAMP WITH TIME ZONE NOT NULL,
			motivo_evento TEXT NOT NULL,
			data_pagamento TIMESTAMP WITH TIME ZONE NOT NULL,
			status VARCHAR(10),
			nota_fiscal_url TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS evento_documentos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			evento_id UUID NOT NULL REFERENCES eventos_financeiros(id) ON DELETE CASCADE,
			tipo VARCHAR(12) NOT NULL,
			nome TEXT NOT NULL,
			url TEXT NOT NULL,
			data TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Error().Err(err).Msg("error creating tables")
			return err
		}
	}

	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_eventos_data_evento ON eventos_financeiros(data_evento)`,
		`CREATE INDEX IF NOT EXISTS idx_eventos_placa ON eventos_financeiros(placa_veiculo)`,
		`CREATE INDEX IF NOT EXISTS idx_eventos_fornecedor ON eventos_financeiros(fornecedor)`,
		`CREATE INDEX IF NOT EXISTS idx_documentos_evento_id ON evento_documentos(evento_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			// Duplicate index errors can happen depending on PG version
			log.Warn().Err(err).Msg("migration statement failed")
		}
	}

	if err := backfillStatus(db); err != nil {
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// backfillStatus resolves the legacy behavior where status was inferred from
// the presence of an invoice URL. Rows written before the explicit field
// existed are migrated once; afterwards the column is authoritative.
func backfillStatus(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			UPDATE eventos_financeiros
			SET status = CASE
				WHEN nota_fiscal_url IS NOT NULL THEN 'Pago'
				ELSE 'Pendente'
			END
			WHERE status IS NULL;

			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'eventos_financeiros'
				AND column_name = 'status'
				AND is_nullable = 'NO'
			) THEN
				ALTER TABLE eventos_financeiros ALTER COLUMN status SET NOT NULL;
				ALTER TABLE eventos_financeiros ALTER COLUMN status SET DEFAULT 'Pendente';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log := logger.WithComponent("migrations")
		log.Error().Err(err).Msg("failed to backfill status")
		return err
	}
	return nil
}
