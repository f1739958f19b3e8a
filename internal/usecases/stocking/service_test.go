package stocking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	eventmocks "github.com/vfg2006/restaurant-manager-api/internal/events/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockInventoryRepository, *eventmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)
	return &Service{inventoryRepo: repo, publisher: publisher}, repo, publisher
}

func TestService_Create_PublishesInventoryUpdated(t *testing.T) {
	ctx := context.Background()
	service, repo, publisher := newTestService(t)
	item := &domain.InventoryItem{Name: "Farinha", Unit: "kg", Quantity: 10, MinQuantity: 2, UnitCost: 5}

	repo.EXPECT().Create(ctx, item).Return(nil)
	publisher.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, event events.Event) {
		assert.Equal(t, events.InventoryUpdated, event.Type)
	})

	created, err := service.Create(ctx, "r1", item)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestService_Create_Validation(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Create(context.Background(), "r1", &domain.InventoryItem{Name: "Óleo", Unit: "l", Quantity: -1})

	assert.ErrorIs(t, err, business.ErrInvalidInput)
}

func TestService_AdjustQuantity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		delta   float64
		setup   func(repo *mocks.MockInventoryRepository, publisher *eventmocks.MockPublisher)
		wantErr error
	}{
		{
			name:    "Delta zero",
			delta:   0,
			setup:   func(*mocks.MockInventoryRepository, *eventmocks.MockPublisher) {},
			wantErr: business.ErrInvalidInput,
		},
		{
			name:  "Baixa com saldo",
			delta: -3,
			setup: func(repo *mocks.MockInventoryRepository, publisher *eventmocks.MockPublisher) {
				repo.EXPECT().AdjustQuantity(ctx, "r1", "i1", -3.0).Return(&domain.InventoryItem{ID: "i1", Quantity: 7}, nil)
				publisher.EXPECT().Publish(ctx, gomock.Any())
			},
		},
		{
			name:  "Saldo insuficiente",
			delta: -30,
			setup: func(repo *mocks.MockInventoryRepository, publisher *eventmocks.MockPublisher) {
				repo.EXPECT().AdjustQuantity(ctx, "r1", "i1", -30.0).Return(nil, repository.ErrNotFound)
				repo.EXPECT().GetByID(ctx, "r1", "i1").Return(&domain.InventoryItem{ID: "i1", Quantity: 10}, nil)
			},
			wantErr: business.ErrRuleViolation,
		},
		{
			name:  "Item inexistente",
			delta: 5,
			setup: func(repo *mocks.MockInventoryRepository, publisher *eventmocks.MockPublisher) {
				repo.EXPECT().AdjustQuantity(ctx, "r1", "i1", 5.0).Return(nil, repository.ErrNotFound)
				repo.EXPECT().GetByID(ctx, "r1", "i1").Return(nil, nil)
			},
			wantErr: business.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, publisher := newTestService(t)
			tt.setup(repo, publisher)

			item, err := service.AdjustQuantity(ctx, "r1", "i1", domain.StockAdjustment{Delta: tt.delta, Reason: "teste"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7.0, item.Quantity)
		})
	}
}

func TestValuate(t *testing.T) {
	items := []*domain.InventoryItem{
		{Name: "Arroz", Category: "graos", Quantity: 10, MinQuantity: 5, UnitCost: 4.5},
		{Name: "Feijão", Category: "graos", Quantity: 2, MinQuantity: 5, UnitCost: 8},
		{Name: "Cerveja", Category: "bebidas", Quantity: 0, MinQuantity: 12, UnitCost: 3.33},
	}

	valuation := Valuate(items)

	assert.Equal(t, 61.0, valuation.TotalValue)
	assert.Equal(t, 3, valuation.ItemsCount)
	assert.Equal(t, 2, valuation.LowStockCount)
	assert.Equal(t, 61.0, valuation.ByCategory["graos"])
	assert.Equal(t, 0.0, valuation.ByCategory["bebidas"])
	assert.Len(t, FilterLowStock(items), 2)
}
