package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/infrastructure/api"
	"github.com/jhoicas/logistica-console/internal/session"
	"github.com/jhoicas/logistica-console/pkg/logger"
)

// Locals keys de la sesión por petición.
const (
	LocalAuthority = "authority"
	LocalClient    = "api_client"
)

// SessionConfig lo necesario para armar la sesión de cada petición.
type SessionConfig struct {
	Connector *api.Connector
	Cookie    session.CookieConfig
	Timeout   time.Duration
	Log       zerolog.Logger
}

// SessionMiddleware liga a la petición un CookieStore, su cliente de API y su
// Authority, y deriva el contexto (timeout + X-Request-ID) que usan los handlers.
// El contexto se cancela cuando termina la cadena de handlers.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.GetRespHeader(fiber.HeaderXRequestID)
		log := logger.WithRequestID(cfg.Log, reqID)

		store := session.NewCookieStore(c, cfg.Cookie)
		client := cfg.Connector.For(store)
		c.Locals(LocalClient, client)
		c.Locals(LocalAuthority, session.NewAuthority(store, client.Auth(), log))

		ctx := api.WithRequestID(c.UserContext(), reqID)
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// Protected deja pasar solo con sesión válida; si no, 303 a /login sin renderizar nada.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetAuthority(c).IsAuthenticated() {
			return c.Redirect(RouteLogin, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// Public deja pasar solo sin sesión; con sesión, 303 a /dashboard.
func Public() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetAuthority(c).IsAuthenticated() {
			return c.Redirect(RouteDashboard, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RouteGuard aplica Protected a ProtectedRoutes y Public a PublicRoutes. El resto
// de rutas pasa sin chequeo.
func RouteGuard() fiber.Handler {
	protected, public := Protected(), Public()
	return func(c *fiber.Ctx) error {
		switch path := c.Path(); {
		case IsProtectedRoute(path):
			return protected(c)
		case IsPublicRoute(path):
			return public(c)
		}
		return c.Next()
	}
}

// GetAuthority devuelve la Authority de la petición (después de SessionMiddleware).
func GetAuthority(c *fiber.Ctx) *session.Authority {
	a, _ := c.Locals(LocalAuthority).(*session.Authority)
	return a
}

// GetClient devuelve el cliente de API de la petición (después de SessionMiddleware).
func GetClient(c *fiber.Ctx) *api.Client {
	cl, _ := c.Locals(LocalClient).(*api.Client)
	return cl
}
