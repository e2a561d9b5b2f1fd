package main

import (
	"github.com/rs/zerolog/log"

	"github.com/vistoriaguardioes/financeiro/app/config"
	"github.com/vistoriaguardioes/financeiro/app/database"
	"github.com/vistoriaguardioes/financeiro/app/logger"
)

// Standalone migration runner for deployments where the schema is applied
// ahead of rolling out the server.
func main() {
	if err := logger.Setup(); err != nil {
		panic(err)
	}

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migrations applied")
}
