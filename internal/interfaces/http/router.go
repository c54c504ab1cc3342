package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/infrastructure/api"
	"github.com/jhoicas/logistica-console/internal/session"
)

// RouterDeps dependencias de la consola.
type RouterDeps struct {
	AppName   string
	Connector *api.Connector
	Cookie    session.CookieConfig
	Renderer  screens.ReportRenderer
	Timeout   time.Duration
	Log       zerolog.Logger
}

// NewApp arma la app Fiber de la consola: vistas, manejo de errores, middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       deps.AppName,
		CaseSensitive: true,
		Views:         NewViews(),
		ErrorHandler:  ErrorHandler(deps.Log, deps.Cookie),
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 30,
		IdleTimeout:   time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la consola. Toda ruta pasa primero por la sesión y
// el RouteGuard; las desconocidas (y "/") van a DefaultRoute.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(SessionConfig{
		Connector: deps.Connector,
		Cookie:    deps.Cookie,
		Timeout:   deps.Timeout,
		Log:       deps.Log,
	}))
	app.Use(RouteGuard())

	// Público
	authHandler := NewAuthHandler(deps.Log)
	app.Get(RouteLogin, authHandler.LoginPage)
	app.Post(RouteLogin, authHandler.Login)
	app.Post(RouteLogout, authHandler.Logout)

	// Protegido
	app.Get(RouteDashboard, Dashboard)

	estoque := app.Group(RouteEstoque)
	estoque.Get("/", ListStock)
	estoque.Post("/", CreateStock)
	estoque.Get("/novo", NewStockForm)
	estoque.Get("/:id/editar", EditStock)
	estoque.Post("/:id", UpdateStock)
	estoque.Post("/:id/excluir", DeleteStock)

	mov := app.Group(RouteMovimentacao)
	mov.Get("/", ListMovements)
	mov.Post("/entrada", RegisterEntry)
	mov.Post("/saida", RegisterExit)

	reportsHandler := NewReportsHandler(deps.Renderer)
	rel := app.Group(RouteRelatorios)
	rel.Get("/", reportsHandler.Show)
	rel.Get("/pdf", reportsHandler.Export)

	vendas := app.Group(RouteVendas)
	vendas.Get("/", ListSales)
	vendas.Post("/:id/status", UpdateSaleStatus)

	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(DefaultRoute(GetAuthority(c).IsAuthenticated()), fiber.StatusSeeOther)
	})
}
