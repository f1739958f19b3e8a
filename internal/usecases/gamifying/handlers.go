package gamifying

import (
	"context"

	"github.com/vfg2006/restaurant-manager-api/internal/events"
)

// SyncOnDataChange recalcula metas e conquistas quando dados financeiros ou de estoque mudam
func SyncOnDataChange(g Gamifier) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		if _, err := g.SyncGoals(ctx, event.RestaurantID); err != nil {
			return err
		}
		_, err := g.SyncAchievements(ctx, event.RestaurantID)
		return err
	}
}

// SyncOnGoalsChange reavalia apenas as conquistas, evitando um ciclo com GoalsUpdated
func SyncOnGoalsChange(g Gamifier) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		_, err := g.SyncAchievements(ctx, event.RestaurantID)
		return err
	}
}
