package main

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/vistoriaguardioes/financeiro/app/config"
	"github.com/vistoriaguardioes/financeiro/app/database"
	"github.com/vistoriaguardioes/financeiro/app/logger"
	"github.com/vistoriaguardioes/financeiro/app/routes/auth"
	"github.com/vistoriaguardioes/financeiro/app/routes/dashboard"
	"github.com/vistoriaguardioes/financeiro/app/routes/eventos"
	"github.com/vistoriaguardioes/financeiro/app/services"
	"github.com/vistoriaguardioes/financeiro/app/storage"
)

// customErrorHandler renders error pages for web requests and JSON for the API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Página não encontrada - Guardiões Financeiro",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Erro - Guardiões Financeiro",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	if err := logger.Setup(); err != nil {
		panic(err)
	}

	// Configuration and database
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Attachment bucket and form service
	uploader := storage.New(config.AppConfig.StorageDir, config.AppConfig.StorageBaseURL)
	servicoEventos := services.NewEventosService(database.NewStore(config.GetDB()), uploader)

	// Template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Static assets and the public document bucket
	app.Static("/static", "./static")
	app.Static(config.AppConfig.StorageBaseURL, config.AppConfig.StorageDir)

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	eventos.SetupEventosRoutes(app, servicoEventos)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Info().Str("port", config.AppConfig.Port).Msg("server starting")
	log.Fatal().Err(app.Listen(":" + config.AppConfig.Port)).Msg("server stopped")
}
