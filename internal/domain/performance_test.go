package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowthDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected GrowthDelta
	}{
		{
			name:     "Crescimento positivo",
			current:  1500,
			previous: 1000,
			expected: GrowthDelta{Percent: 50},
		},
		{
			name:     "Queda de vendas",
			current:  750,
			previous: 1000,
			expected: GrowthDelta{Percent: -25},
		},
		{
			name:     "Período anterior zerado com vendas no atual é variação infinita",
			current:  500,
			previous: 0,
			expected: GrowthDelta{Infinite: true},
		},
		{
			name:     "Ambos os períodos zerados é variação zero",
			current:  0,
			previous: 0,
			expected: GrowthDelta{Percent: 0},
		},
		{
			name:     "Percentual arredondado em duas casas",
			current:  1000,
			previous: 3000,
			expected: GrowthDelta{Percent: -66.67},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateGrowthDelta(tt.current, tt.previous))
		})
	}
}

func TestRankSellerPerformances(t *testing.T) {
	t.Run("Deve ordenar do maior para o menor total e atribuir posições", func(t *testing.T) {
		performances := []*SellerPerformance{
			{Seller: Seller{ID: "S1"}, TotalSalesAmount: 1000},
			{Seller: Seller{ID: "S2"}, TotalSalesAmount: 3000},
			{Seller: Seller{ID: "S3"}, TotalSalesAmount: 2000},
		}

		RankSellerPerformances(performances)

		assert.Equal(t, "S2", performances[0].ID)
		assert.Equal(t, 1, performances[0].Position)
		assert.Equal(t, "S3", performances[1].ID)
		assert.Equal(t, 2, performances[1].Position)
		assert.Equal(t, "S1", performances[2].ID)
		assert.Equal(t, 3, performances[2].Position)
	})

	t.Run("Empates devem preservar a ordem original de entrada", func(t *testing.T) {
		performances := []*SellerPerformance{
			{Seller: Seller{ID: "S1"}, TotalSalesAmount: 500},
			{Seller: Seller{ID: "S2"}, TotalSalesAmount: 500},
			{Seller: Seller{ID: "S3"}, TotalSalesAmount: 500},
		}

		RankSellerPerformances(performances)

		assert.Equal(t, "S1", performances[0].ID)
		assert.Equal(t, "S2", performances[1].ID)
		assert.Equal(t, "S3", performances[2].ID)
	})

	t.Run("Vendedores sem vendas ficam no fim da lista", func(t *testing.T) {
		performances := []*SellerPerformance{
			{Seller: Seller{ID: "S1"}, TotalSalesAmount: 0},
			{Seller: Seller{ID: "S2"}, TotalSalesAmount: 100},
		}

		RankSellerPerformances(performances)

		assert.Equal(t, "S2", performances[0].ID)
		assert.Equal(t, "S1", performances[1].ID)
		assert.Equal(t, 2, performances[1].Position)
	})

	t.Run("Lista vazia não deve quebrar", func(t *testing.T) {
		performances := []*SellerPerformance{}
		RankSellerPerformances(performances)
		assert.Empty(t, performances)
	})
}
