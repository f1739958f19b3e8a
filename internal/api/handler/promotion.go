package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/promoting"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

func ListPromotions(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promotions, err := service.List(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar promoções")
			return
		}

		writeJSON(w, http.StatusOK, promotions)
	}
}

func CreatePromotion(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var promotion domain.Promotion
		if !decodeBody(w, r, &promotion) {
			return
		}

		created, err := service.Create(r.Context(), restaurantID(r), &promotion)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar promoção")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetPromotion(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promotion, err := service.Get(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar promoção")
			return
		}

		writeJSON(w, http.StatusOK, promotion)
	}
}

func UpdatePromotion(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var promotion domain.Promotion
		if !decodeBody(w, r, &promotion) {
			return
		}

		updated, err := service.Update(r.Context(), restaurantID(r), param(r, "id"), &promotion)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar promoção")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeletePromotion(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir promoção")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ActivePromotions lista as promoções válidas agora ou no instante ?at= (RFC 3339)
func ActivePromotions(service promoting.PromotionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		at := time.Now()
		if value := r.URL.Query().Get("at"); value != "" {
			parsed, err := time.Parse(time.RFC3339, value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "at deve estar no formato RFC 3339", nil)
				return
			}
			at = parsed
		}

		promotions, err := service.Active(r.Context(), restaurantID(r), at)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar promoções ativas")
			return
		}

		writeJSON(w, http.StatusOK, promotions)
	}
}
