package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/application/report"
)

func TestGenerateSummaryPDF(t *testing.T) {
	total := decimal.NewFromInt(450)
	products := 3
	r := report.SummaryReport{
		Title:       "Resumo executivo",
		GeneratedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Overview: &dto.OverviewDTO{
			KPIs: dto.OverviewKPIsDTO{TotalSales: &total, InventoryProducts: &products},
			SalesByCategory: []dto.PointDTO{
				{Key: "Beverages", Value: decimal.NewFromInt(300)},
				{Key: "Food", Value: decimal.NewFromInt(150)},
			},
		},
		HR: &dto.HRKPIsDTO{Total: 4, TurnoverRate: decimal.NewFromInt(25), TurnoverTier: "critical"},
		Notices: []dto.NoticeDTO{
			{Dataset: "financeiro", Code: "DATASET_UNAVAILABLE", Message: "datos de financeiro no disponibles"},
		},
	}

	data, err := NewMarotoSummaryGenerator("aircatering-bi").GenerateSummaryPDF(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, colorDanger, tierColor("critical"))
	assert.Equal(t, colorWarning, tierColor("warning"))
	assert.Nil(t, tierColor("normal"))
}

func TestGenerateSummaryPDF_AllSections(t *testing.T) {
	total := decimal.NewFromInt(450)
	revenue := decimal.NewFromInt(1200)
	products, active := 3, 2
	r := report.SummaryReport{
		Title:       "Resumo executivo",
		GeneratedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Overview: &dto.OverviewDTO{
			KPIs: dto.OverviewKPIsDTO{
				TotalSales: &total, Revenue: &revenue,
				InventoryProducts: &products, ActiveEmployees: &active,
			},
			Group: &dto.GroupSectionDTO{
				LatestMonth: "2024-06",
				Revenue:     decimal.NewFromInt(900000),
				Sales:       decimal.NewFromInt(700000),
				Employees:   120,
				RevenueByCompany: []dto.PointDTO{
					{Key: "AirCatering Recife", Value: decimal.NewFromInt(400000)},
					{Key: "AirCatering São Paulo", Value: decimal.NewFromInt(500000)},
				},
			},
		},
		Finance: &dto.FinanceKPIsDTO{
			Revenue:  decimal.NewFromInt(1200),
			Expenses: decimal.NewFromInt(400),
			Profit:   decimal.NewFromInt(800),
		},
		HR: &dto.HRKPIsDTO{
			Total: 4, TurnoverRate: decimal.NewFromInt(12), TurnoverTier: "warning",
			MeanAbsenteeism: decimal.NewFromInt(9), AbsenteeismTier: "critical",
		},
		Production: &dto.ProductionKPIsDTO{
			TotalProduced:  950,
			MeanEfficiency: decimal.NewFromInt(95),
			TotalCost:      decimal.NewFromInt(3000),
			MeanQuality:    decimal.NewFromFloat(8.5),
		},
	}

	data, err := NewMarotoSummaryGenerator("aircatering-bi").GenerateSummaryPDF(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCards(t *testing.T) {
	plain := card("Receitas", "R$ 1,00")
	assert.Equal(t, kpi{label: "Receitas", value: "R$ 1,00"}, plain)
	assert.Nil(t, tierColor(plain.tier))

	tiered := tierCard("Turnover", "12,0%", "warning")
	assert.Equal(t, "warning", tiered.tier)
	assert.Equal(t, colorWarning, tierColor(tiered.tier))
}
