package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/internal/session"
)

// ErrorHandler manejo central de errores de la consola.
//
// Un domain.ErrUnauthorized (la API respondió 401 en cualquier pantalla) borra la
// cookie y redirige a /login. *fiber.Error conserva su status; el resto es un 500.
func ErrorHandler(log zerolog.Logger, cookie session.CookieConfig) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if errors.Is(err, domain.ErrUnauthorized) {
			_ = session.NewCookieStore(c, cookie).Clear()
			log.Info().Str("path", c.Path()).Msg("sesión rechazada por la API, redirigiendo a login")
			return c.Redirect(RouteLogin, fiber.StatusSeeOther)
		}

		code := fiber.StatusInternalServerError
		msg := "Erro inesperado. Tente novamente."
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
			if code == fiber.StatusNotFound {
				msg = "Página não encontrada."
			}
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error en la consola")
		}

		c.Status(code)
		if renderErr := c.Render("error", fiber.Map{"Status": code, "Message": msg}, layout); renderErr != nil {
			return c.SendString(msg)
		}
		return nil
	}
}
