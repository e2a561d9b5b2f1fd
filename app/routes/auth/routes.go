package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Post("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already holding a valid session: straight to the dashboard
	if token := c.Cookies(CookieSessao); token != "" {
		if _, err := ValidarToken(token); err == nil {
			return c.Redirect("/")
		}
	}

	return c.Render("login", fiber.Map{
		"Title": "Login - Guardiões Financeiro",
	}, "")
}

// AuthMiddleware validates the session cookie on every protected route.
// Expired or invalid sessions are cleared and sent back to the login page;
// valid ones get the session object placed in request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	token := c.Cookies(CookieSessao)
	if token == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No session found"})
		}
		return c.Redirect("/login")
	}

	sessao, err := ValidarToken(token)
	if err != nil {
		limparCookie(c)
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
		}
		return c.Redirect("/login")
	}

	c.Locals("sessao", sessao)
	return c.Next()
}
