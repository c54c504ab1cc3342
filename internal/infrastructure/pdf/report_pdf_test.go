package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-console/internal/application/dto"
)

func TestRenderReport_GeneraPDF(t *testing.T) {
	doc := dto.ReportDocument{
		Title:    "Relatório Geral",
		Subtitle: "Resumo da operação",
		Metrics: []dto.ReportMetric{
			{Label: "Total de vendas", Value: "12"},
			{Label: "Total de entregas", Value: "8"},
			{Label: "Itens em estoque", Value: "30"},
			{Label: "Receita mensal", Value: "R$ 1.234,50"},
		},
		Tables: []dto.ReportTable{
			{
				Title:   "Produtos mais vendidos",
				Headers: []string{"Produto", "Quantidade", "Receita"},
				Rows: [][]string{
					{"Palete", "10", "R$ 500,00"},
					{"Caixa"},
				},
			},
			{Title: "Sem dados", Headers: []string{"A", "B"}},
		},
	}

	out, err := NewReportPDFGenerator().RenderReport(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReportPDFGenerator().RenderReport(ctx, dto.ReportDocument{Title: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColumnSizes(t *testing.T) {
	assert.Nil(t, columnSizes(0))
	assert.Equal(t, []int{12}, columnSizes(1))
	assert.Equal(t, []int{4, 4, 4}, columnSizes(3))
	assert.Equal(t, []int{3, 2, 2, 2, 2}, columnSizes(5))
}
