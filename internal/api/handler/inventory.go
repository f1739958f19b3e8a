package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking"
)

func ListInventory(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.List(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar estoque")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func CreateInventoryItem(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.InventoryItem
		if !decodeBody(w, r, &item) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &item)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar item de estoque")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetInventoryItem(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar item de estoque")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func UpdateInventoryItem(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.InventoryItem
		if !decodeBody(w, r, &item) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &item)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar item de estoque")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteInventoryItem(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir item de estoque")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AdjustInventoryItem(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var adjustment domain.StockAdjustment
		if !decodeBody(w, r, &adjustment) {
			return
		}

		item, err := service.AdjustQuantity(r.Context(), restaurantID(r), param(r, "id"), adjustment)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ajustar estoque")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func LowStock(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.LowStock(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar itens com estoque baixo")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func InventoryValuation(service stocking.InventoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		valuation, err := service.Valuation(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular valor do estoque")
			return
		}

		writeJSON(w, http.StatusOK, valuation)
	}
}
