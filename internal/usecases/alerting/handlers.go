package alerting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
)

// CheckStockOnInventoryChange gera alertas de estoque baixo a cada alteração de estoque
func CheckStockOnInventoryChange(a AlertManager) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		created, err := a.CheckStock(ctx, event.RestaurantID)
		if err != nil {
			return err
		}
		if created > 0 {
			logrus.WithFields(logrus.Fields{
				"restaurant_id": event.RestaurantID,
				"created":       created,
			}).Info("Alertas de estoque baixo gerados")
		}
		return nil
	}
}
