package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/account/mocks"
	authmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCreateRestaurant(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)
	auth := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().CreateRestaurant(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, r *domain.Restaurant) (*domain.Restaurant, error) {
			assert.Equal(t, "Cantina", r.Name)
			r.ID = "novo"
			return r, nil
		})
	auth.EXPECT().IssueToken(gomock.Any(), 7).Return("token-novo", nil)

	rec := serve(t, Restaurants(service, auth), ownerClaims(), http.MethodPost, "/v1/restaurants", []byte(`{"name":"Cantina"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp CreateRestaurantResponse
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "novo", resp.Restaurant.ID)
	assert.Equal(t, "token-novo", resp.Token)
}

func TestRestaurantMembers(t *testing.T) {
	t.Run("Funcionário não adiciona membros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)

		rec := serve(t, Restaurants(service, nil), staffClaims(), http.MethodPost, "/v1/restaurants/"+testRestaurant+"/members", []byte(`{"user_id":3}`))

		assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Remove o último proprietário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)
		service.EXPECT().RemoveMember(gomock.Any(), testRestaurant, 7).
			Return(account.NewAccountErrorWithID(errors.New("último proprietário"), apiErrors.ErrBusinessRule, testRestaurant, "O restaurante precisa de um proprietário"))

		rec := serve(t, Restaurants(service, nil), ownerClaims(), http.MethodDelete, "/v1/restaurants/"+testRestaurant+"/members/7", nil)

		assertAPIError(t, rec, apiErrors.ErrBusinessRule)
	})

	t.Run("Adiciona membro no restaurante da rota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)
		service.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.RestaurantMember) error {
			assert.Equal(t, testRestaurant, m.RestaurantID)
			assert.Equal(t, 3, m.UserID)
			return nil
		})

		rec := serve(t, Restaurants(service, nil), ownerClaims(), http.MethodPost, "/v1/restaurants/"+testRestaurant+"/members", []byte(`{"user_id":3,"restaurant_id":"outro"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
