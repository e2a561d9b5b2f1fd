package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vistoriaguardioes/financeiro/app/logger"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Senha string `json:"senha" form:"senha"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if !VerificarSenha(req.Senha) {
		return c.Status(401).JSON(fiber.Map{"error": "Senha incorreta"})
	}

	token, err := GerarToken()
	if err != nil {
		log := logger.WithComponent("auth")
		log.Error().Err(err).Msg("failed to sign session token")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieSessao,
		Value:    token,
		Expires:  time.Now().Add(SessaoDuracao),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"message": "Login bem-sucedido"})
}

func LogoutAPI(c *fiber.Ctx) error {
	limparCookie(c)
	return c.Redirect("/login")
}

func limparCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSessao,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
