package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
)

func ListTechnicalSheets(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, err := service.List(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar fichas técnicas")
			return
		}

		writeJSON(w, http.StatusOK, sheets)
	}
}

func CreateTechnicalSheet(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sheet domain.TechnicalSheet
		if !decodeBody(w, r, &sheet) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &sheet)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar ficha técnica")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetTechnicalSheet(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheet, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ficha técnica")
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}

func UpdateTechnicalSheet(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sheet domain.TechnicalSheet
		if !decodeBody(w, r, &sheet) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &sheet)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar ficha técnica")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTechnicalSheet(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir ficha técnica")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RecalculateTechnicalSheet atualiza custos a partir do estoque e propaga ao cardápio
func RecalculateTechnicalSheet(service costing.SheetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheet, err := service.Recalculate(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao recalcular ficha técnica")
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}
