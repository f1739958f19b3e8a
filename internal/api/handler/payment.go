package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/billing"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

func ListPayments(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		var filter domain.PaymentFilter

		if value := query.Get("kind"); value != "" {
			kind := domain.PaymentKind(value)
			filter.Kind = &kind
		}
		if value := query.Get("status"); value != "" {
			status := domain.PaymentStatus(value)
			filter.Status = &status
		}
		if value := query.Get("due_to"); value != "" {
			dueTo, err := time.Parse(time.DateOnly, value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "due_to deve estar no formato YYYY-MM-DD", nil)
				return
			}
			filter.DueTo = &dueTo
		}

		payments, err := service.List(r.Context(), restaurantID(r), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}

func CreatePayment(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payment domain.Payment
		if !decodeBody(w, r, &payment) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &payment)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar conta")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetPayment(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar conta")
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

func UpdatePayment(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payment domain.Payment
		if !decodeBody(w, r, &payment) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &payment)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar conta")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeletePayment(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PayPayment quita a conta e gera o lançamento correspondente no caixa
func PayPayment(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.PayRequest
		if r.ContentLength != 0 && !decodeBody(w, r, &request) {
			return
		}

		payment, err := service.Pay(r.Context(), restaurantID(r), param(r, "id"), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao quitar conta")
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

func PaymentSummary(service billing.PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar resumo de contas")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
