package alerting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting/mocks"
	"go.uber.org/mock/gomock"
)

func TestCheckStockOnInventoryChange(t *testing.T) {
	event := events.NewChange(events.InventoryUpdated, "r1", "inventory", "i1", events.ActionUpdated)

	t.Run("Verifica o restaurante do evento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		manager := mocks.NewMockAlertManager(ctrl)
		manager.EXPECT().CheckStock(gomock.Any(), "r1").Return(2, nil)

		err := alerting.CheckStockOnInventoryChange(manager)(context.Background(), event)

		assert.NoError(t, err)
	})

	t.Run("Propaga o erro para o barramento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		manager := mocks.NewMockAlertManager(ctrl)
		manager.EXPECT().CheckStock(gomock.Any(), "r1").Return(0, errors.New("falha"))

		err := alerting.CheckStockOnInventoryChange(manager)(context.Background(), event)

		assert.Error(t, err)
	})
}
