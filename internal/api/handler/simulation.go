package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/simulating"
)

func SimulatePrice(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.PriceSimulationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.SimulatePrice(r.Context(), restaurantID(r), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao simular preço")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func SimulateFinancial(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.FinancialSimulationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.SimulateFinancial(r.Context(), restaurantID(r), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao simular cenário financeiro")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
