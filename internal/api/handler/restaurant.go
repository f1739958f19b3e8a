package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/account"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-manager-api/pkg/middleware"
)

type CreateRestaurantResponse struct {
	Restaurant *domain.Restaurant `json:"restaurant"`
	Token      string             `json:"token,omitempty"`
}

// CreateRestaurant cria o restaurante e devolve um token que já inclui o novo restaurante
func CreateRestaurant(service account.AccountService, auth authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var restaurant domain.Restaurant
		if !decodeBody(w, r, &restaurant) {
			return
		}

		created, err := service.CreateRestaurant(r.Context(), userClaims.UserID, &restaurant)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar restaurante")
			return
		}

		response := CreateRestaurantResponse{Restaurant: created}
		token, err := auth.IssueToken(r.Context(), userClaims.UserID)
		if err != nil {
			// o restaurante já existe; o cliente pode renovar o token depois
			writeServiceError(w, r, err, "Restaurante criado, mas falhou ao renovar o token")
			return
		}
		response.Token = token

		writeJSON(w, http.StatusCreated, response)
	}
}

func ListRestaurants(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		restaurants, err := service.ListRestaurants(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar restaurantes")
			return
		}

		writeJSON(w, http.StatusOK, restaurants)
	}
}

func GetRestaurant(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurant, err := service.GetRestaurant(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar restaurante")
			return
		}

		writeJSON(w, http.StatusOK, restaurant)
	}
}

func UpdateRestaurant(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateRestaurantRequest
		if !decodeBody(w, r, &request) {
			return
		}

		restaurant, err := service.UpdateRestaurant(r.Context(), restaurantID(r), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar restaurante")
			return
		}

		writeJSON(w, http.StatusOK, restaurant)
	}
}

func ListMembers(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ListMembers(r.Context(), restaurantID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar membros")
			return
		}

		writeJSON(w, http.StatusOK, members)
	}
}

func AddMember(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var member domain.RestaurantMember
		if !decodeBody(w, r, &member) {
			return
		}
		member.RestaurantID = restaurantID(r)

		if err := service.AddMember(r.Context(), &member); err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar membro")
			return
		}

		writeJSON(w, http.StatusCreated, member)
	}
}

func RemoveMember(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := intParam(w, r, "user_id")
		if !ok {
			return
		}

		if err := service.RemoveMember(r.Context(), restaurantID(r), userID); err != nil {
			writeServiceError(w, r, err, "Erro ao remover membro")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
