package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
)

// Handlers de Vendas.

func salesScreen(c *fiber.Ctx) *screens.SalesScreen {
	return screens.NewSalesScreen(GetClient(c).Vendas())
}

func renderSales(c *fiber.Ctx, page *screens.SalesPage) error {
	return render(c, "vendas", RouteVendas, fiber.Map{"Title": "Vendas", "Page": page})
}

// ListSales GET /vendas?dataInicio=&dataFim=&status=&ok=.
func ListSales(c *fiber.Ctx) error {
	var q screens.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Filtros inválidos.")
	}
	page, err := salesScreen(c).Load(c.UserContext(), q)
	if err != nil {
		return err
	}
	page.Notice = screens.NoticeText(c.Query("ok"))
	return renderSales(c, page)
}

type saleStatusForm struct {
	Status string `form:"status"`
}

// UpdateSaleStatus POST /vendas/:id/status. Los filtros del listado viajan en la query.
func UpdateSaleStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form saleStatusForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulário inválido.")
	}
	var q screens.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Filtros inválidos.")
	}
	page, err := salesScreen(c).UpdateStatus(c.UserContext(), q, id, form.Status)
	if err != nil {
		return err
	}
	if page == nil {
		return redirectNotice(c, RouteVendas, q.Values(), screens.NoticeStatus)
	}
	return renderSales(c, page)
}
