package middleware

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso pelo perfil global do usuário (rotas fora de restaurante)
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AnyRestaurantOwner exige que o usuário seja proprietário de ao menos um restaurante.
// Usado nas rotas de sistema, que não pertencem a um restaurante.
func AnyRestaurantOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range userClaims.UserRestaurants {
				if role == domain.RoleOwner {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para usuário ID=%d: não é proprietário de restaurante", userClaims.UserID)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas proprietários de restaurante podem acessar este recurso", nil)
		})
	}
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleOwner, domain.RoleManager, domain.RoleStaff})
}

// RestaurantMember garante que o usuário pertence ao restaurante do parâmetro :restaurant_id
func RestaurantMember() func(http.Handler) http.Handler {
	return RestaurantRole(domain.RoleOwner, domain.RoleManager, domain.RoleStaff)
}

// RestaurantRole exige um dos papéis no restaurante do parâmetro :restaurant_id.
// O papel vem da associação de membros, não do perfil global.
func RestaurantRole(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			restaurantID := httprouter.ParamsFromContext(r.Context()).ByName("restaurant_id")
			if restaurantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do restaurante não fornecido", nil)
				return
			}

			role, member := userClaims.RestaurantRole(restaurantID)
			if !member {
				logrus.WithFields(logrus.Fields{
					"user_id":       userClaims.UserID,
					"restaurant_id": restaurantID,
				}).Warn("Acesso negado a restaurante")
				apiErrors.WriteError(w, apiErrors.ErrRestaurantAccess, "Você não tem acesso a este restaurante", nil)
				return
			}

			if !slices.Contains(allowedRoles, role) {
				logrus.WithFields(logrus.Fields{
					"user_id":       userClaims.UserID,
					"restaurant_id": restaurantID,
					"role":          role,
				}).Warn("Papel insuficiente no restaurante")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Seu papel neste restaurante não permite esta ação", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
