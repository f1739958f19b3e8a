package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

func ListCashFlow(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := cashFlowFilterFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entries, err := service.List(r.Context(), restaurantID(r), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar lançamentos")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func cashFlowFilterFromQuery(r *http.Request) (domain.CashFlowFilter, error) {
	query := r.URL.Query()
	var filter domain.CashFlowFilter

	if query.Has("month") || query.Has("start") || query.Has("end") {
		period, err := parsePeriod(r, time.Now())
		if err != nil {
			return filter, err
		}
		filter.Period = &period
	}

	if value := query.Get("type"); value != "" {
		entryType := domain.CashFlowType(value)
		filter.Type = &entryType
	}
	if value := query.Get("status"); value != "" {
		status := domain.CashFlowStatus(value)
		filter.Status = &status
	}
	if value := query.Get("category"); value != "" {
		filter.Category = &value
	}
	if value := query.Get("payment_method"); value != "" {
		filter.PaymentMethod = &value
	}
	if value := query.Get("search"); value != "" {
		filter.Search = &value
	}
	if value := query.Get("limit"); value != "" {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	return filter, nil
}

func CreateCashFlow(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.CashFlowEntry
		if !decodeBody(w, r, &entry) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &entry)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar lançamento")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetCashFlow(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar lançamento")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func UpdateCashFlow(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.CashFlowEntry
		if !decodeBody(w, r, &entry) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &entry)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar lançamento")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteCashFlow(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir lançamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CashFlowSummary consolida o período (mês corrente por padrão)
func CashFlowSummary(service bookkeeping.CashFlowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), restaurantID(r), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar resumo do fluxo de caixa")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
