package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
)

// Dashboard GET /dashboard: identidad del usuario y resumen del relatório geral.
func Dashboard(c *fiber.Ctx) error {
	page, err := screens.NewDashboardScreen(GetClient(c).Relatorios()).Load(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "dashboard", RouteDashboard, fiber.Map{"Title": "Dashboard", "Page": page})
}
