package domain

import (
	"fmt"
	"time"
)

// DailySale é o total vendido e a meta de um dia dentro de um período
type DailySale struct {
	ID        int64     `json:"id"`
	Period    string    `json:"period"` // Formato YYYY-MM
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	Goal      float64   `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailySeriesPoint é um ponto do gráfico de tendência diária. Current e
// Previous são nil quando o dia não tem valor na respectiva série — um
// buraco no gráfico, que a linha deve atravessar, e não zero.
type DailySeriesPoint struct {
	Day      string   `json:"day"` // Dia do mês, "01".."31"
	Current  *float64 `json:"current"`
	Previous *float64 `json:"previous"`
}

// DailySeriesResponse são as duas séries mensais alinhadas para o gráfico
type DailySeriesResponse struct {
	Period         string             `json:"period"`
	PreviousPeriod string             `json:"previous_period"`
	Series         []DailySeriesPoint `json:"series"`
}

// AlignDailySeries mescla as séries do período atual e do anterior sobre um
// conjunto unificado de dias do mês. Um dia entra na saída se existe em
// qualquer uma das séries; nos dias ausentes de uma série o valor fica nil.
func AlignDailySeries(current, previous []*DailySale) []DailySeriesPoint {
	currentByDay := amountsByDay(current)
	previousByDay := amountsByDay(previous)

	series := make([]DailySeriesPoint, 0, 31)
	for day := 1; day <= 31; day++ {
		key := fmt.Sprintf("%02d", day)

		cur, hasCur := currentByDay[key]
		prev, hasPrev := previousByDay[key]
		if !hasCur && !hasPrev {
			continue
		}

		point := DailySeriesPoint{Day: key}
		if hasCur {
			v := cur
			point.Current = &v
		}
		if hasPrev {
			v := prev
			point.Previous = &v
		}

		series = append(series, point)
	}

	return series
}

func amountsByDay(sales []*DailySale) map[string]float64 {
	byDay := make(map[string]float64, len(sales))
	for _, sale := range sales {
		if sale == nil {
			continue
		}
		byDay[sale.Date.Format("02")] = sale.Amount
	}
	return byDay
}
