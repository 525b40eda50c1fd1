package handler

import (
	"net/http"

	"github.com/Wall-AR/sales-pulse-api/internal/usecases/ranking"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/Wall-AR/sales-pulse-api/pkg/apiErrors"
)

// GetKpiSnapshot retorna o snapshot de KPIs do período (query param "period",
// YYYY-MM; ausente = período ativo resolvido pelo serviço)
func GetKpiSnapshot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		view := service.GetKpiSnapshot(period)
		if view == nil {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Nenhum snapshot de KPIs para o período", nil)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// GetDailySeries retorna as séries diárias do período e do período anterior
func GetDailySeries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		series := service.GetDailySeries(period)
		if series == nil {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Nenhum período disponível", nil)
			return
		}

		respondJSON(w, http.StatusOK, series)
	}
}

// GetAvailablePeriods retorna os períodos com dados lançados
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.GetAvailablePeriods())
	}
}

// GetSellerRanking retorna o ranking de vendedores do período
func GetSellerRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")

		respondJSON(w, http.StatusOK, service.GetSellerRanking(period))
	}
}
