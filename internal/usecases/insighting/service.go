// Package insighting consolida os indicadores exibidos no painel
package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/billing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/promoting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const recentEntriesLimit = 5

// Service lê os dados dos demais casos de uso em paralelo
type Service struct {
	cashFlow   bookkeeping.CashFlowManager
	payments   billing.PaymentManager
	inventory  stocking.InventoryManager
	promotions promoting.PromotionManager
	gamifier   gamifying.Gamifier
	alerts     AlertCounter
	now        func() time.Time
}

func NewService(
	cashFlow bookkeeping.CashFlowManager,
	payments billing.PaymentManager,
	inventory stocking.InventoryManager,
	promotions promoting.PromotionManager,
	gamifier gamifying.Gamifier,
	alerts AlertCounter,
) Insighter {
	return &Service{
		cashFlow:   cashFlow,
		payments:   payments,
		inventory:  inventory,
		promotions: promotions,
		gamifier:   gamifier,
		alerts:     alerts,
		now:        time.Now,
	}
}

// Overview falha por inteiro se qualquer consulta falhar
func (s *Service) Overview(ctx context.Context, restaurantID string) (*domain.DashboardOverview, error) {
	now := s.now()
	overview := &domain.DashboardOverview{RestaurantID: restaurantID}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.cashFlow.Summary(ctx, restaurantID, domain.MonthPeriod(now))
		if err != nil {
			return err
		}
		overview.CashFlow = summary
		return nil
	})

	g.Go(func() error {
		entries, err := s.cashFlow.List(ctx, restaurantID, domain.CashFlowFilter{Limit: recentEntriesLimit})
		if err != nil {
			return err
		}
		overview.RecentEntries = entries
		return nil
	})

	g.Go(func() error {
		summary, err := s.payments.Summary(ctx, restaurantID)
		if err != nil {
			return err
		}
		overview.Payments = summary
		return nil
	})

	g.Go(func() error {
		valuation, err := s.inventory.Valuation(ctx, restaurantID)
		if err != nil {
			return err
		}
		overview.InventoryValue = valuation.TotalValue
		overview.LowStockCount = valuation.LowStockCount
		return nil
	})

	g.Go(func() error {
		active, err := s.promotions.Active(ctx, restaurantID, now)
		if err != nil {
			return err
		}
		overview.ActivePromotions = len(active)
		return nil
	})

	g.Go(func() error {
		goals, err := s.gamifier.ListGoals(ctx, restaurantID)
		if err != nil {
			return err
		}
		overview.Goals = GoalsProgress(goals)
		return nil
	})

	g.Go(func() error {
		profile, err := s.gamifier.Profile(ctx, restaurantID)
		if err != nil {
			return err
		}
		overview.Gamification = profile
		return nil
	})

	g.Go(func() error {
		unread, err := s.alerts.CountUnread(ctx, restaurantID)
		if err != nil {
			return business.Database(err, "erro ao contar alertas")
		}
		overview.UnreadAlerts = unread
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("restaurant_id", restaurantID).Error("Erro ao montar painel")
		return nil, err
	}

	return overview, nil
}

// GoalsProgress resume quantas metas existem, quantas foram concluídas e a média de progresso
func GoalsProgress(goals []*domain.Goal) domain.GoalsProgress {
	progress := domain.GoalsProgress{Total: len(goals)}
	if len(goals) == 0 {
		return progress
	}

	var sum float64
	for _, goal := range goals {
		if goal.Completed {
			progress.Completed++
		}
		sum += goal.Progress
	}
	progress.AverageProgress = utils.RoundWithTwoDecimalPlace(sum / float64(len(goals)))
	return progress
}
