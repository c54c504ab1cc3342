package dto

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/logistica-console/internal/domain/entity"
)

// SalesReportFilter filtros de GET /relatorios/vendas.
type SalesReportFilter struct {
	Period   string // YYYY-MM
	SellerID int64
}

// Query codifica el filtro.
func (f SalesReportFilter) Query() url.Values {
	q := url.Values{}
	if f.Period != "" {
		q.Set("periodo", f.Period)
	}
	if f.SellerID > 0 {
		q.Set("vendedor", strconv.FormatInt(f.SellerID, 10))
	}
	return q
}

// DeliveriesReportFilter filtros de GET /relatorios/entregas.
type DeliveriesReportFilter struct {
	Status   string
	DriverID int64
}

// Query codifica el filtro.
func (f DeliveriesReportFilter) Query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DriverID > 0 {
		q.Set("motorista", strconv.FormatInt(f.DriverID, 10))
	}
	return q
}

// Envolturas de /relatorios/*; el payload siempre viaja en "relatorio".

type GeneralReportResponse struct {
	Envelope
	Report *entity.GeneralReport `json:"relatorio"`
}

type SalesReportResponse struct {
	Envelope
	Report *entity.SalesReport `json:"relatorio"`
}

type DeliveriesReportResponse struct {
	Envelope
	Report *entity.DeliveriesReport `json:"relatorio"`
}

type UsersReportResponse struct {
	Envelope
	Report *entity.UsersReport `json:"relatorio"`
}

// ReportDocument versión tabular de un relatório, lista para exportar (PDF).
type ReportDocument struct {
	Title    string
	Subtitle string
	Metrics  []ReportMetric
	Tables   []ReportTable
}

// ReportMetric indicador suelto (etiqueta + valor ya formateado).
type ReportMetric struct {
	Label string
	Value string
}

// ReportTable tabla con cabecera; cada fila tiene len(Headers) celdas.
type ReportTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}
