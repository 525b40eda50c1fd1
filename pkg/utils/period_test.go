package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Período válido deve retornar o primeiro dia do mês",
			input:    "2025-03",
			expected: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Período sem zero à esquerda deve retornar erro",
			input:    "2025-3",
			hasError: true,
		},
		{
			name:     "Formato com dia deve retornar erro",
			input:    "2025-03-01",
			hasError: true,
		},
		{
			name:     "String vazia deve retornar erro",
			input:    "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePeriod(tt.input)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Mês comum deve retroceder um mês",
			input:    "2025-06",
			expected: "2025-05",
		},
		{
			name:     "Janeiro deve retroceder para dezembro do ano anterior",
			input:    "2025-01",
			expected: "2024-12",
		},
		{
			name:     "Período inválido deve retornar vazio",
			input:    "junho",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreviousPeriod(tt.input))
		})
	}
}

func TestPeriodRange(t *testing.T) {
	first, last, err := PeriodRange("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	// 2024 é bissexto
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	_, _, err = PeriodRange("2024")
	assert.Error(t, err)
}

func TestDaysInPeriod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Mês de 31 dias", input: "2025-01", expected: 31},
		{name: "Mês de 30 dias", input: "2025-04", expected: 30},
		{name: "Fevereiro em ano bissexto", input: "2024-02", expected: 29},
		{name: "Fevereiro em ano comum", input: "2025-02", expected: 28},
		{name: "Período inválido retorna zero", input: "x", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInPeriod(tt.input))
		})
	}
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2025-08", FormatPeriod(time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)))
}
