package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalPercentage(t *testing.T) {
	tests := []struct {
		name     string
		sold     float64
		goal     float64
		expected *float64
	}{
		{
			name:     "Meta não definida deve retornar nil",
			sold:     5000,
			goal:     0,
			expected: nil,
		},
		{
			name:     "Meta negativa deve retornar nil",
			sold:     5000,
			goal:     -100,
			expected: nil,
		},
		{
			name:     "Meta atingida parcialmente",
			sold:     7500,
			goal:     10000,
			expected: floatPtr(75),
		},
		{
			name:     "Meta ultrapassada não tem teto",
			sold:     15000,
			goal:     10000,
			expected: floatPtr(150),
		},
		{
			name:     "Sem vendas com meta definida retorna 0%",
			sold:     0,
			goal:     10000,
			expected: floatPtr(0),
		},
		{
			name:     "Percentual arredondado em duas casas",
			sold:     1000,
			goal:     3000,
			expected: floatPtr(33.33),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GoalPercentage(tt.sold, tt.goal)

			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		sold     float64
		goal     float64
		expected float64
	}{
		{name: "Sem meta definida retorna 0", sold: 5000, goal: 0, expected: 0},
		{name: "Progresso parcial", sold: 4000, goal: 10000, expected: 40},
		{name: "Meta ultrapassada é limitada a 100", sold: 15000, goal: 10000, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoalProgress(tt.sold, tt.goal))
		})
	}
}

func TestReturningClients(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		newClients  int
		expected    int
	}{
		{name: "Cálculo simples", total: 50, newClients: 20, expected: 30},
		{name: "Todos novos", total: 30, newClients: 30, expected: 0},
		{name: "Dados inconsistentes saturam em zero", total: 10, newClients: 15, expected: 0},
		{name: "Sem clientes", total: 0, newClients: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReturningClients(tt.total, tt.newClients))
		})
	}
}

func TestAverageTicket(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		count    int
		expected float64
	}{
		{name: "Ticket médio simples", amount: 1000, count: 4, expected: 250},
		{name: "Sem vendas retorna zero", amount: 0, count: 0, expected: 0},
		{name: "Arredondamento em duas casas", amount: 100, count: 3, expected: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageTicket(tt.amount, tt.count))
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
