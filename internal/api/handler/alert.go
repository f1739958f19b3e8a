package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
)

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ListAlerts aceita ?unread=true para listar apenas os não lidos
func ListAlerts(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unreadOnly := r.URL.Query().Get("unread") == "true"

		alerts, err := service.List(r.Context(), restaurantID(r), unreadOnly)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar alertas")
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}

func MarkAlertRead(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.MarkRead(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao marcar alerta como lido")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func MarkAllAlertsRead(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := service.MarkAllRead(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao marcar alertas como lidos")
			return
		}

		writeJSON(w, http.StatusOK, MarkAllReadResponse{Updated: updated})
	}
}

func DeleteAlert(service alerting.AlertManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir alerta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
