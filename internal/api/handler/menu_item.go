package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/ranking"
)

func ListMenuItems(service cataloging.MenuManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.List(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar cardápio")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func CreateMenuItem(service cataloging.MenuManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.MenuItem
		if !decodeBody(w, r, &item) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &item)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar item do cardápio")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetMenuItem(service cataloging.MenuManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar item do cardápio")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func UpdateMenuItem(service cataloging.MenuManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.MenuItem
		if !decodeBody(w, r, &item) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &item)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar item do cardápio")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteMenuItem(service cataloging.MenuManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir item do cardápio")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMenuRanking classifica os itens do cardápio por margem
func GetMenuRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetMenuRanking(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar ranking do cardápio")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
