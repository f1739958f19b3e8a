package scheduler

import (
	"context"
	"time"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
)

const JobPaymentDue = "payment-due"

// PaymentDueService marca contas vencidas e alerta os vencimentos próximos
type PaymentDueService struct {
	*cronJob
	restaurantRepo repository.RestaurantRepository
	alerts         alerting.AlertManager
	now            func() time.Time
}

func NewPaymentDueService(
	restaurantRepo repository.RestaurantRepository,
	alerts alerting.AlertManager,
	cfg *config.Config,
) *PaymentDueService {
	s := &PaymentDueService{
		restaurantRepo: restaurantRepo,
		alerts:         alerts,
		now:            time.Now,
	}
	s.cronJob = newCronJob(JobPaymentDue, cfg.PaymentDue.CronSchedule, cfg.PaymentDue.Enabled, s.checkAll)

	return s
}

func (s *PaymentDueService) checkAll(ctx context.Context) (int, error) {
	now := s.now()
	return forEachRestaurant(ctx, JobPaymentDue, s.restaurantRepo, 1, func(ctx context.Context, restaurantID string) (int, error) {
		return s.alerts.CheckPayments(ctx, restaurantID, now)
	})
}
