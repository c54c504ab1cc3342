// Package pdf exporta un relatório (dto.ReportDocument) a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + subtítulo        │  Fecha de emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: etiqueta / valor, tres por fila                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLAS: título, cabecera y una fila por registro            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	gridSize       = 12
	metricsPerRow  = 3
	maxTableColumn = 12
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator renderiza relatórios con Maroto v2.
type ReportPDFGenerator struct {
	now func() time.Time
}

var _ screens.ReportRenderer = (*ReportPDFGenerator)(nil)

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator {
	return &ReportPDFGenerator{now: time.Now}
}

// RenderReport genera el PDF del documento y devuelve sus bytes.
func (g *ReportPDFGenerator) RenderReport(ctx context.Context, doc dto.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor("Logística Console", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(doc.Metrics) > 0 {
		m.AddRows(metricRows(doc.Metrics)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	for _, t := range doc.Tables {
		m.AddRows(tableRows(t)...)
		m.AddRows(line.NewRow(4))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y subtítulo (izq) y fecha de emisión (der).
func headerRow(doc dto.ReportDocument, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(format.DateTime(now), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// metricRows: indicadores en grupos de tres.
func metricRows(metrics []dto.ReportMetric) []core.Row {
	var rows []core.Row
	size := gridSize / metricsPerRow
	for start := 0; start < len(metrics); start += metricsPerRow {
		end := min(start+metricsPerRow, len(metrics))
		cols := make([]core.Col, 0, metricsPerRow)
		for _, mt := range metrics[start:end] {
			cols = append(cols, col.New(size).Add(
				text.New(mt.Label, props.Text{Size: 8, Color: colorGray, Top: 1}),
				text.New(mt.Value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
			))
		}
		rows = append(rows, row.New(13).Add(cols...))
	}
	return rows
}

// tableRows: título, cabecera con fondo y filas alternadas.
func tableRows(t dto.ReportTable) []core.Row {
	headers := t.Headers
	if len(headers) > maxTableColumn {
		headers = headers[:maxTableColumn]
	}
	sizes := columnSizes(len(headers))

	rows := []core.Row{
		row.New(8).Add(col.New(gridSize).Add(
			text.New(t.Title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		)),
	}
	if len(headers) == 0 {
		return rows
	}

	head := make([]core.Col, len(headers))
	for i, h := range headers {
		head[i] = col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
			Align: cellAlign(i),
		}))
	}
	rows = append(rows, row.New(7).Add(head...).WithStyle(&props.Cell{BackgroundColor: colorPrimary}))

	if len(t.Rows) == 0 {
		rows = append(rows, row.New(7).Add(col.New(gridSize).Add(
			text.New("Sem registros", props.Text{Size: 8, Color: colorGray, Top: 1.5, Align: align.Center}),
		)))
		return rows
	}
	for n, cells := range t.Rows {
		cols := make([]core.Col, len(headers))
		for i := range headers {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			cols[i] = col.New(sizes[i]).Add(text.New(value, props.Text{
				Size: 8, Top: 1.5, Left: 1, Right: 1, Align: cellAlign(i),
			}))
		}
		r := row.New(7).Add(cols...)
		if n%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(gridSize).Add(
		text.New("Relatório gerado pela Logística Console a partir dos dados da API no momento da emissão.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSizes reparte las 12 columnas de la grilla; la primera absorbe el resto.
func columnSizes(n int) []int {
	if n == 0 {
		return nil
	}
	sizes := make([]int, n)
	base := gridSize / n
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += gridSize - base*n
	return sizes
}

// La primera columna es texto; el resto son valores.
func cellAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}
