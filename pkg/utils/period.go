package utils

import (
	"fmt"
	"time"
)

// PeriodLayout é o formato de período usado em toda a aplicação (ano-mês)
const PeriodLayout = "2006-01"

// ParsePeriod converte uma string de período (YYYY-MM) para o primeiro dia do mês
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q (esperado YYYY-MM): %w", period, err)
	}
	return t, nil
}

// FormatPeriod formata uma data como período YYYY-MM
func FormatPeriod(t time.Time) string {
	return t.Format(PeriodLayout)
}

// CurrentPeriod retorna o período do mês corrente
func CurrentPeriod() string {
	return time.Now().Format(PeriodLayout)
}

// PreviousPeriod retorna o período imediatamente anterior ao informado.
// Retorna string vazia se o período for inválido.
func PreviousPeriod(period string) string {
	t, err := ParsePeriod(period)
	if err != nil {
		return ""
	}
	return t.AddDate(0, -1, 0).Format(PeriodLayout)
}

// PeriodRange retorna o primeiro e o último dia do mês de um período
func PeriodRange(period string) (time.Time, time.Time, error) {
	first, err := ParsePeriod(period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// DaysInPeriod retorna a quantidade de dias do mês de um período
func DaysInPeriod(period string) int {
	first, err := ParsePeriod(period)
	if err != nil {
		return 0
	}
	return first.AddDate(0, 1, -1).Day()
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
