package scheduler

import (
	"context"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying"
)

const JobGoalsSync = "goals-sync"

// GoalsSyncService recalcula metas e conquistas de todos os restaurantes
type GoalsSyncService struct {
	*cronJob
	restaurantRepo    repository.RestaurantRepository
	gamifier          gamifying.Gamifier
	maxConcurrentJobs int
}

func NewGoalsSyncService(
	restaurantRepo repository.RestaurantRepository,
	gamifier gamifying.Gamifier,
	cfg *config.Config,
) *GoalsSyncService {
	s := &GoalsSyncService{
		restaurantRepo:    restaurantRepo,
		gamifier:          gamifier,
		maxConcurrentJobs: cfg.GoalsSync.MaxConcurrentJobs,
	}
	s.cronJob = newCronJob(JobGoalsSync, cfg.GoalsSync.CronSchedule, cfg.GoalsSync.Enabled, s.syncAll)

	return s
}

func (s *GoalsSyncService) syncAll(ctx context.Context) (int, error) {
	return forEachRestaurant(ctx, JobGoalsSync, s.restaurantRepo, s.maxConcurrentJobs, func(ctx context.Context, restaurantID string) (int, error) {
		if _, err := s.gamifier.SyncGoals(ctx, restaurantID); err != nil {
			return 0, err
		}
		if _, err := s.gamifier.SyncAchievements(ctx, restaurantID); err != nil {
			return 0, err
		}
		return 1, nil
	})
}
