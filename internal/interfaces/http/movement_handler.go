package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// Handlers de Movimentação de Estoque.

func movementScreen(c *fiber.Ctx) *screens.MovementScreen {
	client := GetClient(c)
	return screens.NewMovementScreen(client.Estoque(), client.Movimentacao())
}

func movementQuery(c *fiber.Ctx) (screens.MovementQuery, error) {
	var q screens.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "Filtros inválidos.")
	}
	return q.Normalize(), nil
}

func renderMovements(c *fiber.Ctx, page *screens.MovementPage) error {
	return render(c, "movimentacao", RouteMovimentacao, fiber.Map{"Title": "Movimentação de Estoque", "Page": page})
}

// ListMovements GET /movimentacao?aba=&estoqueId=&tipo=&dataInicio=&dataFim=&ok=.
func ListMovements(c *fiber.Ctx) error {
	q, err := movementQuery(c)
	if err != nil {
		return err
	}
	page, err := movementScreen(c).Load(c.UserContext(), q)
	if err != nil {
		return err
	}
	page.Notice = screens.NoticeText(c.Query("ok"))
	return renderMovements(c, page)
}

// RegisterEntry POST /movimentacao/entrada.
func RegisterEntry(c *fiber.Ctx) error { return registerMovement(c, entity.MovementEntry) }

// RegisterExit POST /movimentacao/saida.
func RegisterExit(c *fiber.Ctx) error { return registerMovement(c, entity.MovementExit) }

func registerMovement(c *fiber.Ctx, kind string) error {
	var form screens.MovementForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulário inválido.")
	}
	form.Type = kind

	q := screens.MovementQuery{Tab: screens.TabEntry}
	notice := screens.NoticeEntry
	if kind == entity.MovementExit {
		q.Tab = screens.TabExit
		notice = screens.NoticeExit
	}
	page, err := movementScreen(c).Register(c.UserContext(), q, form)
	if err != nil {
		return err
	}
	if page == nil {
		return redirectNotice(c, RouteMovimentacao, url.Values{"aba": {q.Tab}}, notice)
	}
	return renderMovements(c, page)
}
