package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/pkg/logger"
)

// Config parámetros del mock.
type Config struct {
	AppName   string
	JWTSecret string
	TokenTTL  time.Duration
}

// New arma la app Fiber con todas las rutas bajo /api.
func New(cfg Config, store *Store, log zerolog.Logger) *fiber.App {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	h := &Handler{store: store, secret: cfg.JWTSecret, tokenTTL: cfg.TokenTTL, log: log}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str(logger.FieldRequestID, c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("mock api")
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	api := app.Group("/api")
	api.Post("/auth/login", h.Login)

	protected := api.Group("", BearerAuth(cfg.JWTSecret))

	estoque := protected.Group("/estoque")
	estoque.Get("/", h.ListStock)
	estoque.Post("/", h.CreateStock)
	estoque.Get("/:id", h.GetStock)
	estoque.Put("/:id", h.UpdateStock)
	estoque.Delete("/:id", h.DeleteStock)

	mov := protected.Group("/movimentacao")
	mov.Get("/", h.ListMovements)
	mov.Post("/entrada", h.RegisterEntry)
	mov.Post("/saida", h.RegisterExit)
	mov.Get("/relatorio/estoque", h.StockReport)
	mov.Get("/:id", h.GetMovement)

	vendas := protected.Group("/vendas")
	vendas.Get("/", h.ListSales)
	vendas.Post("/", h.CreateSale)
	vendas.Get("/:id", h.GetSale)
	vendas.Patch("/:id/status", h.UpdateSaleStatus)

	rel := protected.Group("/relatorios")
	rel.Get("/geral", h.GeneralReport)
	rel.Get("/vendas", h.SalesReport)
	rel.Get("/entregas", h.DeliveriesReport)
	rel.Get("/usuarios", h.UsersReport)

	return app
}
