package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-manager-api/pkg/middleware"
)

// GetUser retorna o usuário quando ele é o solicitante ou membro de um restaurante que o solicitante administra
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUser(r.Context(), userClaims.UserID, id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ListUsers lista os membros dos restaurantes administrados pelo solicitante
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		users, err := service.ListUser(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser atualiza o perfil do próprio usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		var updateReq domain.UpdateUserRequest
		if !decodeBody(w, r, &updateReq) {
			return
		}
		updateReq.ID = id

		if err := service.UpdateUser(r.Context(), userClaims.UserID, &updateReq); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Usuário atualizado com sucesso"})
	}
}

func requireClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
		return nil, false
	}
	return userClaims, true
}
