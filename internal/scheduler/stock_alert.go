package scheduler

import (
	"context"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
)

const JobStockAlert = "stock-alert"

// StockAlertService gera alertas de estoque baixo
type StockAlertService struct {
	*cronJob
	restaurantRepo repository.RestaurantRepository
	alerts         alerting.AlertManager
}

func NewStockAlertService(
	restaurantRepo repository.RestaurantRepository,
	alerts alerting.AlertManager,
	cfg *config.Config,
) *StockAlertService {
	s := &StockAlertService{
		restaurantRepo: restaurantRepo,
		alerts:         alerts,
	}
	s.cronJob = newCronJob(JobStockAlert, cfg.StockAlert.CronSchedule, cfg.StockAlert.Enabled, s.checkAll)

	return s
}

// checkAll devolve o total de alertas criados
func (s *StockAlertService) checkAll(ctx context.Context) (int, error) {
	return forEachRestaurant(ctx, JobStockAlert, s.restaurantRepo, 1, s.alerts.CheckStock)
}
