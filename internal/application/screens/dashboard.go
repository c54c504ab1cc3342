package screens

import (
	"context"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// DashboardPage identidad del usuario y resumen del relatório geral.
type DashboardPage struct {
	Summary View[*entity.GeneralReport]
}

// DashboardScreen pantalla de inicio.
type DashboardScreen struct {
	reports ReportService
}

// NewDashboardScreen construye la pantalla.
func NewDashboardScreen(reports ReportService) *DashboardScreen {
	return &DashboardScreen{reports: reports}
}

// Load pide el resumen. Un fallo se muestra en el bloque; el resto de la página no depende de él.
func (s *DashboardScreen) Load(ctx context.Context) (*DashboardPage, error) {
	page := &DashboardPage{}
	if err := page.Summary.Load(ctx, msgGeneralLoad, s.reports.General); err != nil {
		return nil, err
	}
	return page, nil
}
