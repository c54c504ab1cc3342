package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
)

// Handlers de Gestão de Estoque. Una mutación exitosa redirige (303) a GET /estoque,
// que recarga la lista completa; un error se renderiza en la misma respuesta.

func stockScreen(c *fiber.Ctx) *screens.StockScreen {
	return screens.NewStockScreen(GetClient(c).Estoque())
}

func renderStock(c *fiber.Ctx, page *screens.StockPage) error {
	return render(c, "estoque", RouteEstoque, fiber.Map{"Title": "Gestão de Estoque", "Page": page})
}

// ListStock GET /estoque?ok=.
func ListStock(c *fiber.Ctx) error {
	page, err := stockScreen(c).Load(c.UserContext())
	if err != nil {
		return err
	}
	page.Notice = screens.NoticeText(c.Query("ok"))
	return renderStock(c, page)
}

// NewStockForm GET /estoque/novo: lista con el formulario de alta abierto.
func NewStockForm(c *fiber.Ctx) error {
	page, err := stockScreen(c).Load(c.UserContext())
	if err != nil {
		return err
	}
	page.Form = &screens.StockForm{}
	return renderStock(c, page)
}

// EditStock GET /estoque/:id/editar.
func EditStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	page, err := stockScreen(c).Edit(c.UserContext(), id)
	if err != nil {
		return err
	}
	return renderStock(c, page)
}

// CreateStock POST /estoque.
func CreateStock(c *fiber.Ctx) error {
	var form screens.StockForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulário inválido.")
	}
	form.ID = 0
	return saveStock(c, form)
}

// UpdateStock POST /estoque/:id.
func UpdateStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var form screens.StockForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulário inválido.")
	}
	form.ID = id
	return saveStock(c, form)
}

func saveStock(c *fiber.Ctx, form screens.StockForm) error {
	page, err := stockScreen(c).Save(c.UserContext(), form)
	if err != nil {
		return err
	}
	if page == nil {
		return redirectNotice(c, RouteEstoque, nil, screens.NoticeSaved)
	}
	return renderStock(c, page)
}

// DeleteStock POST /estoque/:id/excluir.
func DeleteStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	page, err := stockScreen(c).Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if page == nil {
		return redirectNotice(c, RouteEstoque, nil, screens.NoticeDeleted)
	}
	return renderStock(c, page)
}

// redirectNotice cierra una mutación exitosa con 303 a route, conservando query y
// agregando ok=<notice>; recargar la página ya no reenvía el formulario.
func redirectNotice(c *fiber.Ctx, route string, query url.Values, notice string) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("ok", notice)
	return c.Redirect(route+"?"+query.Encode(), fiber.StatusSeeOther)
}

// paramID lee :id como entero positivo; si no, 400.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
	}
	return int64(id), nil
}
