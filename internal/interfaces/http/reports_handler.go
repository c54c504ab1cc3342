package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain"
)

// ReportsHandler Relatórios y su exportación a PDF.
type ReportsHandler struct {
	renderer screens.ReportRenderer
}

// NewReportsHandler construye el handler. renderer nil deshabilita la exportación.
func NewReportsHandler(renderer screens.ReportRenderer) *ReportsHandler {
	return &ReportsHandler{renderer: renderer}
}

func (h *ReportsHandler) screen(c *fiber.Ctx) *screens.ReportsScreen {
	return screens.NewReportsScreen(GetClient(c).Relatorios(), h.renderer)
}

func reportQuery(c *fiber.Ctx) (screens.ReportQuery, error) {
	var q screens.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "Filtros inválidos.")
	}
	return q.Normalize(), nil
}

// Show GET /relatorios?aba=&periodo=&status=.
func (h *ReportsHandler) Show(c *fiber.Ctx) error {
	q, err := reportQuery(c)
	if err != nil {
		return err
	}
	page, err := h.screen(c).Load(c.UserContext(), q)
	if err != nil {
		return err
	}
	return render(c, "relatorios", RouteRelatorios, fiber.Map{
		"Title":     "Relatórios",
		"Page":      page,
		"CanExport": h.renderer != nil,
	})
}

// Export GET /relatorios/pdf con los mismos filtros: descarga la pestaña activa.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	q, err := reportQuery(c)
	if err != nil {
		return err
	}
	out, filename, err := h.screen(c).Export(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		return fiber.NewError(fiber.StatusUnprocessableEntity, screens.Message(err, "Erro ao exportar relatório."))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(out)
}
