package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/monitoring"
)

func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.Overview(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar painel")
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

// GetSystemStatus responde 503 quando o banco está fora para facilitar sondas externas
func GetSystemStatus(service monitoring.Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := service.Status(r.Context())

		code := http.StatusOK
		if status.Status == monitoring.StatusDown {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, status)
	}
}
