package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	billingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/billing/mocks"
	bookkeepingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping/mocks"
	gamifyingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying/mocks"
	promotingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/promoting/mocks"
	stockingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	cashFlow   *bookkeepingmocks.MockCashFlowManager
	payments   *billingmocks.MockPaymentManager
	inventory  *stockingmocks.MockInventoryManager
	promotions *promotingmocks.MockPromotionManager
	gamifier   *gamifyingmocks.MockGamifier
	alerts     *repomocks.MockSystemAlertRepository
}

var fixedNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		cashFlow:   bookkeepingmocks.NewMockCashFlowManager(ctrl),
		payments:   billingmocks.NewMockPaymentManager(ctrl),
		inventory:  stockingmocks.NewMockInventoryManager(ctrl),
		promotions: promotingmocks.NewMockPromotionManager(ctrl),
		gamifier:   gamifyingmocks.NewMockGamifier(ctrl),
		alerts:     repomocks.NewMockSystemAlertRepository(ctrl),
	}
	service := NewService(deps.cashFlow, deps.payments, deps.inventory, deps.promotions, deps.gamifier, deps.alerts).(*Service)
	service.now = func() time.Time { return fixedNow }
	return service, deps
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.cashFlow.EXPECT().Summary(gomock.Any(), "r1", domain.MonthPeriod(fixedNow)).
		Return(&domain.CashFlowSummary{TotalIncome: 5000, TotalExpense: 3000, Balance: 2000, ProfitMargin: 40}, nil)
	deps.cashFlow.EXPECT().List(gomock.Any(), "r1", domain.CashFlowFilter{Limit: recentEntriesLimit}).
		Return([]*domain.CashFlowEntry{{ID: "e1"}, {ID: "e2"}}, nil)
	deps.payments.EXPECT().Summary(gomock.Any(), "r1").Return(&domain.PaymentSummary{PendingPayable: 800}, nil)
	deps.inventory.EXPECT().Valuation(gomock.Any(), "r1").Return(&domain.InventoryValuation{TotalValue: 1234.5, LowStockCount: 2}, nil)
	deps.promotions.EXPECT().Active(gomock.Any(), "r1", fixedNow).Return([]*domain.Promotion{{ID: "p1"}}, nil)
	deps.gamifier.EXPECT().ListGoals(gomock.Any(), "r1").Return([]*domain.Goal{
		{Completed: true, Progress: 100},
		{Progress: 50},
	}, nil)
	deps.gamifier.EXPECT().Profile(gomock.Any(), "r1").Return(&domain.GamificationProfile{Points: 30, Level: 1}, nil)
	deps.alerts.EXPECT().CountUnread(gomock.Any(), "r1").Return(4, nil)

	overview, err := service.Overview(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, 40.0, overview.CashFlow.ProfitMargin)
	assert.Len(t, overview.RecentEntries, 2)
	assert.Equal(t, 800.0, overview.Payments.PendingPayable)
	assert.Equal(t, 1234.5, overview.InventoryValue)
	assert.Equal(t, 2, overview.LowStockCount)
	assert.Equal(t, 1, overview.ActivePromotions)
	assert.Equal(t, domain.GoalsProgress{Total: 2, Completed: 1, AverageProgress: 75}, overview.Goals)
	assert.Equal(t, 30, overview.Gamification.Points)
	assert.Equal(t, 4, overview.UnreadAlerts)
}

func TestService_Overview_FailsWhenAnyQueryFails(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)
	boom := errors.New("falha")

	deps.cashFlow.EXPECT().Summary(gomock.Any(), "r1", gomock.Any()).Return(nil, boom)
	deps.cashFlow.EXPECT().List(gomock.Any(), "r1", gomock.Any()).Return(nil, nil).AnyTimes()
	deps.payments.EXPECT().Summary(gomock.Any(), "r1").Return(&domain.PaymentSummary{}, nil).AnyTimes()
	deps.inventory.EXPECT().Valuation(gomock.Any(), "r1").Return(&domain.InventoryValuation{}, nil).AnyTimes()
	deps.promotions.EXPECT().Active(gomock.Any(), "r1", gomock.Any()).Return(nil, nil).AnyTimes()
	deps.gamifier.EXPECT().ListGoals(gomock.Any(), "r1").Return(nil, nil).AnyTimes()
	deps.gamifier.EXPECT().Profile(gomock.Any(), "r1").Return(&domain.GamificationProfile{}, nil).AnyTimes()
	deps.alerts.EXPECT().CountUnread(gomock.Any(), "r1").Return(0, nil).AnyTimes()

	overview, err := service.Overview(ctx, "r1")

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, overview)
}

func TestGoalsProgress_Empty(t *testing.T) {
	assert.Equal(t, domain.GoalsProgress{}, GoalsProgress(nil))
}
