package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

type ProgressRequest struct {
	Value *float64 `json:"value"`
}

type SyncGoalsResponse struct {
	Goals        []*domain.Goal        `json:"goals"`
	Achievements []*domain.Achievement `json:"achievements"`
}

func ListGoals(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.ListGoals(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, http.StatusOK, goals)
	}
}

func CreateGoal(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if !decodeBody(w, r, &goal) {
			return
		}

		created, err := service.CreateGoal(r.Context(), restaurantID(r), &goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar meta")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetGoal(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal, err := service.GetGoal(r.Context(), restaurantID(r), param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar meta")
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

func UpdateGoal(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if !decodeBody(w, r, &goal) {
			return
		}

		updated, err := service.UpdateGoal(r.Context(), restaurantID(r), param(r, "id"), &goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteGoal(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteGoal(r.Context(), restaurantID(r), param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// UpdateGoalProgress registra o valor atual de uma meta manual
func UpdateGoalProgress(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProgressRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Value == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Valor do progresso é obrigatório", nil)
			return
		}

		goal, err := service.UpdateProgress(r.Context(), restaurantID(r), param(r, "id"), *req.Value)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar progresso da meta")
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

// SyncGoals recalcula metas vinculadas e conquistas sob demanda
func SyncGoals(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.SyncGoals(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar metas")
			return
		}

		achievements, err := service.SyncAchievements(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar conquistas")
			return
		}

		writeJSON(w, http.StatusOK, SyncGoalsResponse{Goals: goals, Achievements: achievements})
	}
}

func ListAchievements(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := service.ListAchievements(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar conquistas")
			return
		}

		writeJSON(w, http.StatusOK, achievements)
	}
}

func GamificationProfile(service gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.Profile(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar perfil de conquistas")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
