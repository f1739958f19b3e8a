package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (AccountService, *mocks.MockRestaurantRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	restaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewService(restaurantRepo, userRepo), restaurantRepo, userRepo
}

func assertAccountError(t *testing.T, err error, base error, code string) {
	t.Helper()
	var accountErr *AccountError
	require.True(t, errors.As(err, &accountErr))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, code, accountErr.Code)
}

func TestService_CreateRestaurant(t *testing.T) {
	ctx := context.Background()

	t.Run("Aplica padrões e gera código", func(t *testing.T) {
		service, restaurantRepo, _ := newTestService(t)
		restaurantRepo.EXPECT().Create(ctx, gomock.Any(), 7).Return(nil)

		restaurant, err := service.CreateRestaurant(ctx, 7, &domain.Restaurant{Name: "  Cantina  "})

		require.NoError(t, err)
		assert.Equal(t, "Cantina", restaurant.Name)
		assert.Len(t, restaurant.Code, 6)
		assert.NotEmpty(t, restaurant.ID)
		assert.Equal(t, domain.DefaultTaxRate, restaurant.TaxRate)
		assert.Equal(t, domain.DefaultCardFeeRate, restaurant.CardFeeRate)
		assert.Equal(t, domain.DefaultTargetCMVPercentage, restaurant.TargetCMVPercentage)
	})

	t.Run("Sem nome", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.CreateRestaurant(ctx, 7, &domain.Restaurant{Name: " "})

		assertAccountError(t, err, ErrInvalidSettings, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Taxa inválida", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.CreateRestaurant(ctx, 7, &domain.Restaurant{Name: "Cantina", TaxRate: 1.5})

		assertAccountError(t, err, ErrInvalidSettings, apiErrors.ErrInvalidRequest)
	})
}

func TestService_UpdateRestaurant(t *testing.T) {
	ctx := context.Background()
	target := 28.0
	name := "Cantina Nova"

	tests := []struct {
		name    string
		request *domain.UpdateRestaurantRequest
		setup   func(repo *mocks.MockRestaurantRepository)
		check   func(t *testing.T, restaurant *domain.Restaurant, err error)
	}{
		{
			name:    "Atualiza apenas campos informados",
			request: &domain.UpdateRestaurantRequest{Name: &name, TargetCMVPercentage: &target},
			setup: func(repo *mocks.MockRestaurantRepository) {
				repo.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1", Name: "Cantina", TaxRate: 0.08}, nil)
				repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, restaurant *domain.Restaurant, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Cantina Nova", restaurant.Name)
				assert.Equal(t, 28.0, restaurant.TargetCMVPercentage)
				assert.Equal(t, 0.08, restaurant.TaxRate)
			},
		},
		{
			name:    "Restaurante inexistente",
			request: &domain.UpdateRestaurantRequest{Name: &name},
			setup: func(repo *mocks.MockRestaurantRepository) {
				repo.EXPECT().GetByID(ctx, "r1").Return(nil, nil)
			},
			check: func(t *testing.T, _ *domain.Restaurant, err error) {
				assertAccountError(t, err, ErrRestaurantNotFound, apiErrors.ErrResourceNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, restaurantRepo, _ := newTestService(t)
			tt.setup(restaurantRepo)

			restaurant, err := service.UpdateRestaurant(ctx, "r1", tt.request)

			tt.check(t, restaurant, err)
		})
	}
}

func TestService_AddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Papel padrão é equipe", func(t *testing.T) {
		service, restaurantRepo, userRepo := newTestService(t)
		restaurantRepo.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
		userRepo.EXPECT().GetUserByID(ctx, 9).Return(&domain.User{ID: 9}, nil)
		restaurantRepo.EXPECT().AddMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, member *domain.RestaurantMember) error {
			assert.Equal(t, domain.RoleStaff, member.Role)
			return nil
		})

		err := service.AddMember(ctx, &domain.RestaurantMember{RestaurantID: "r1", UserID: 9})

		assert.NoError(t, err)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, restaurantRepo, userRepo := newTestService(t)
		restaurantRepo.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
		userRepo.EXPECT().GetUserByID(ctx, 9).Return(nil, nil)

		err := service.AddMember(ctx, &domain.RestaurantMember{RestaurantID: "r1", UserID: 9, Role: domain.RoleManager})

		assertAccountError(t, err, ErrUserNotFound, apiErrors.ErrUserNotFound)
	})

	t.Run("Papel inválido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		err := service.AddMember(ctx, &domain.RestaurantMember{RestaurantID: "r1", UserID: 9, Role: 8})

		assertAccountError(t, err, ErrInvalidRole, apiErrors.ErrInvalidRequest)
	})
}

func TestService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Não remove o último proprietário", func(t *testing.T) {
		service, restaurantRepo, _ := newTestService(t)
		restaurantRepo.EXPECT().ListMembers(ctx, "r1").Return([]*domain.RestaurantMember{
			{RestaurantID: "r1", UserID: 1, Role: domain.RoleOwner},
			{RestaurantID: "r1", UserID: 2, Role: domain.RoleStaff},
		}, nil)

		err := service.RemoveMember(ctx, "r1", 1)

		assertAccountError(t, err, ErrLastOwner, apiErrors.ErrBusinessRule)
	})

	t.Run("Remove membro da equipe", func(t *testing.T) {
		service, restaurantRepo, _ := newTestService(t)
		restaurantRepo.EXPECT().ListMembers(ctx, "r1").Return([]*domain.RestaurantMember{
			{RestaurantID: "r1", UserID: 1, Role: domain.RoleOwner},
			{RestaurantID: "r1", UserID: 2, Role: domain.RoleStaff},
		}, nil)
		restaurantRepo.EXPECT().RemoveMember(ctx, "r1", 2).Return(nil)

		assert.NoError(t, service.RemoveMember(ctx, "r1", 2))
	})
}
