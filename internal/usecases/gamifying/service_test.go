package gamifying

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	eventmocks "github.com/vfg2006/restaurant-manager-api/internal/events/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	goals        *mocks.MockGoalRepository
	achievements *mocks.MockAchievementRepository
	alerts       *mocks.MockSystemAlertRepository
	restaurants  *mocks.MockRestaurantRepository
	cashFlow     *mocks.MockCashFlowRepository
	inventory    *mocks.MockInventoryRepository
	sheets       *mocks.MockTechnicalSheetRepository
	promotions   *mocks.MockPromotionRepository
	publisher    *eventmocks.MockPublisher
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		goals:        mocks.NewMockGoalRepository(ctrl),
		achievements: mocks.NewMockAchievementRepository(ctrl),
		alerts:       mocks.NewMockSystemAlertRepository(ctrl),
		restaurants:  mocks.NewMockRestaurantRepository(ctrl),
		cashFlow:     mocks.NewMockCashFlowRepository(ctrl),
		inventory:    mocks.NewMockInventoryRepository(ctrl),
		sheets:       mocks.NewMockTechnicalSheetRepository(ctrl),
		promotions:   mocks.NewMockPromotionRepository(ctrl),
		publisher:    eventmocks.NewMockPublisher(ctrl),
	}

	service := NewService(Repositories{
		Goals:        deps.goals,
		Achievements: deps.achievements,
		Alerts:       deps.alerts,
		Restaurants:  deps.restaurants,
		CashFlow:     deps.cashFlow,
		Inventory:    deps.inventory,
		Sheets:       deps.sheets,
		Promotions:   deps.promotions,
	}, deps.publisher).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, deps
}

func metricPtr(m domain.GoalMetric) *domain.GoalMetric { return &m }

// expectMetrics prepara as consultas usadas para calcular as métricas
func expectMetrics(ctx context.Context, deps testDeps, entries []*domain.CashFlowEntry) {
	deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
	deps.cashFlow.EXPECT().List(ctx, "r1", domain.CashFlowFilter{}).Return(entries, nil)
	deps.inventory.EXPECT().List(ctx, "r1").Return([]*domain.InventoryItem{}, nil)
	deps.sheets.EXPECT().List(ctx, "r1").Return([]*domain.TechnicalSheet{}, nil)
	deps.promotions.EXPECT().List(ctx, "r1").Return([]*domain.Promotion{}, nil)
}

func income(amount float64) *domain.CashFlowEntry {
	return &domain.CashFlowEntry{
		Date:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount: amount,
		Type:   domain.CashFlowIncome,
		Status: domain.CashFlowCompleted,
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		goal     *domain.Goal
		expected float64
	}{
		{
			name:     "Metade do alvo",
			goal:     &domain.Goal{TargetValue: 1000, CurrentValue: 500},
			expected: 50,
		},
		{
			name:     "Acima do alvo limita em 100",
			goal:     &domain.Goal{TargetValue: 1000, CurrentValue: 1500},
			expected: 100,
		},
		{
			name:     "Menor é melhor acima do alvo",
			goal:     &domain.Goal{TargetValue: 30, CurrentValue: 40, Metric: metricPtr(domain.MetricCMVPercentage)},
			expected: 75,
		},
		{
			name:     "Menor é melhor sem dados",
			goal:     &domain.Goal{TargetValue: 30, CurrentValue: 0, Metric: metricPtr(domain.MetricCMVPercentage)},
			expected: 0,
		},
		{
			name:     "Alvo zero",
			goal:     &domain.Goal{TargetValue: 0, CurrentValue: 10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Progress(tt.goal))
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("Conclui apenas uma vez", func(t *testing.T) {
		goal := &domain.Goal{TargetValue: 100, CurrentValue: 100}

		assert.True(t, Evaluate(goal, fixedNow))
		assert.True(t, goal.Completed)
		assert.Equal(t, fixedNow, *goal.CompletedAt)

		goal.CurrentValue = 10
		assert.False(t, Evaluate(goal, fixedNow.Add(time.Hour)))
		assert.True(t, goal.Completed)
		assert.Equal(t, fixedNow, *goal.CompletedAt)
		assert.Equal(t, 100.0, goal.Progress)
	})

	t.Run("Menor é melhor não conclui com o mês em aberto", func(t *testing.T) {
		goal := &domain.Goal{TargetValue: 20000, CurrentValue: 50, Metric: metricPtr(domain.MetricMonthlyExpenses)}

		assert.False(t, Evaluate(goal, fixedNow))
		assert.False(t, goal.Completed)
		assert.Nil(t, goal.CompletedAt)
		assert.Equal(t, 100.0, goal.Progress)
	})

	t.Run("Menor é melhor sem dados não conclui", func(t *testing.T) {
		goal := &domain.Goal{TargetValue: 5000, Metric: metricPtr(domain.MetricMonthlyExpenses)}

		assert.False(t, Evaluate(goal, fixedNow))
		assert.False(t, goal.Completed)
	})
}

func TestEvaluateClosedMonth(t *testing.T) {
	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	expenses := metricPtr(domain.MetricMonthlyExpenses)

	tests := []struct {
		name     string
		goal     *domain.Goal
		metrics  Metrics
		expected bool
	}{
		{
			name:     "Fevereiro fechado abaixo do teto",
			goal:     &domain.Goal{TargetValue: 20000, Metric: expenses, CreatedAt: january},
			metrics:  Metrics{MonthlyExpenses: 50, ClosedMonthExpenses: 15000},
			expected: true,
		},
		{
			name:     "Fevereiro fechado acima do teto",
			goal:     &domain.Goal{TargetValue: 20000, Metric: expenses, CreatedAt: january},
			metrics:  Metrics{MonthlyExpenses: 50, ClosedMonthExpenses: 35000},
			expected: false,
		},
		{
			name:     "Mês fechado sem lançamentos",
			goal:     &domain.Goal{TargetValue: 20000, Metric: expenses, CreatedAt: january},
			metrics:  Metrics{MonthlyExpenses: 50},
			expected: false,
		},
		{
			name:     "Meta criada no mês corrente",
			goal:     &domain.Goal{TargetValue: 20000, Metric: expenses, CreatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
			metrics:  Metrics{ClosedMonthExpenses: 15000},
			expected: false,
		},
		{
			name:     "CMV fechado dentro do teto",
			goal:     &domain.Goal{TargetValue: 35, Metric: metricPtr(domain.MetricCMVPercentage), CreatedAt: january},
			metrics:  Metrics{ClosedMonthCMV: 31.5},
			expected: true,
		},
		{
			name:     "Maior é melhor não usa o mês fechado",
			goal:     &domain.Goal{TargetValue: 1000, Metric: metricPtr(domain.MetricMonthlyRevenue), CreatedAt: january},
			metrics:  Metrics{ClosedMonthRevenue: 5000},
			expected: false,
		},
		{
			name:     "Já concluída",
			goal:     &domain.Goal{TargetValue: 20000, Metric: expenses, CreatedAt: january, Completed: true},
			metrics:  Metrics{ClosedMonthExpenses: 15000},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wasCompleted := tt.goal.Completed

			assert.Equal(t, tt.expected, EvaluateClosedMonth(tt.goal, tt.metrics, fixedNow))
			assert.Equal(t, tt.expected || wasCompleted, tt.goal.Completed)
			if tt.expected {
				assert.Equal(t, fixedNow, *tt.goal.CompletedAt)
			}
		})
	}
}

func TestBuildProfile(t *testing.T) {
	achievements := []*domain.Achievement{
		{Code: "a", Points: 100, Unlocked: true},
		{Code: "b", Points: 50, Unlocked: true},
		{Code: "c", Points: 30},
	}
	goals := []*domain.Goal{{Completed: true}, {}, {}}

	profile := BuildProfile(achievements, goals)

	assert.Equal(t, 150, profile.Points)
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, 50, profile.PointsToNextLevel)
	assert.Equal(t, 2, profile.UnlockedCount)
	assert.Equal(t, 3, profile.TotalAchievements)
	assert.Equal(t, 1, profile.CompletedGoals)
	assert.Equal(t, 2, profile.ActiveGoals)
}

func TestComputeMetrics(t *testing.T) {
	restaurant := &domain.Restaurant{ID: "r1"}
	restaurant.ApplyDefaults()
	old := income(9999)
	old.Date = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	expense := &domain.CashFlowEntry{
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:   400,
		Type:     domain.CashFlowExpense,
		Category: "Insumos",
		Status:   domain.CashFlowCompleted,
	}

	canceled := income(700)
	canceled.Status = domain.CashFlowCanceled
	february := income(2000)
	february.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	februarySupplies := &domain.CashFlowEntry{
		Date:     time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC),
		Amount:   500,
		Type:     domain.CashFlowExpense,
		Category: "Insumos",
		Status:   domain.CashFlowCompleted,
	}

	metrics := ComputeMetrics(restaurant, domain.MonthPeriod(fixedNow),
		[]*domain.CashFlowEntry{income(1000), expense, old, canceled, february, februarySupplies}, 3, 2, 1,
		[]*domain.Goal{{Completed: true}})

	assert.Equal(t, 1000.0, metrics.MonthlyRevenue)
	assert.Equal(t, 400.0, metrics.MonthlyExpenses)
	assert.Equal(t, 600.0, metrics.MonthlyProfit)
	assert.Equal(t, 5, metrics.CashFlowEntries, "lançamento cancelado não conta")
	assert.Equal(t, 1, metrics.CompletedGoals)
	assert.Equal(t, 35.0, metrics.TargetCMV)
	assert.Greater(t, metrics.CMVPercentage, 0.0)

	assert.Equal(t, 2000.0, metrics.ClosedMonthRevenue)
	assert.Equal(t, 500.0, metrics.ClosedMonthExpenses)
	assert.Greater(t, metrics.ClosedMonthCMV, 0.0)
}

func TestComputeMetrics_SomenteCancelados(t *testing.T) {
	restaurant := &domain.Restaurant{ID: "r1"}
	restaurant.ApplyDefaults()
	canceled := income(700)
	canceled.Status = domain.CashFlowCanceled

	metrics := ComputeMetrics(restaurant, domain.MonthPeriod(fixedNow), []*domain.CashFlowEntry{canceled}, 0, 0, 0, nil)

	assert.Zero(t, metrics.CashFlowEntries)
	assert.False(t, catalogueRule(t, "first_cash_entry").Met(metrics))
}

func catalogueRule(t *testing.T, code string) achievementRule {
	t.Helper()
	for _, r := range catalogue {
		if r.Code == code {
			return r
		}
	}
	t.Fatalf("conquista %s não encontrada", code)
	return achievementRule{}
}

func TestCatalogue_CMVNoMesFechado(t *testing.T) {
	cmv := catalogueRule(t, "cmv_under_target")

	tests := []struct {
		name     string
		metrics  Metrics
		expected bool
	}{
		{
			name:     "Mês corrente bom não basta",
			metrics:  Metrics{MonthlyRevenue: 1500, CMVPercentage: 0, TargetCMV: 35},
			expected: false,
		},
		{
			name:     "Mês fechado dentro da meta",
			metrics:  Metrics{ClosedMonthRevenue: 2000, ClosedMonthCMV: 25, TargetCMV: 35},
			expected: true,
		},
		{
			name:     "Mês fechado acima da meta",
			metrics:  Metrics{ClosedMonthRevenue: 2000, ClosedMonthCMV: 40, TargetCMV: 35},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cmv.Met(tt.metrics))
		})
	}
}

func TestService_CreateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Cria e publica GoalsUpdated", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.goals.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, event events.Event) {
			assert.Equal(t, events.GoalsUpdated, event.Type)
		})

		goal, err := service.CreateGoal(ctx, "r1", &domain.Goal{Title: "Vender mais", TargetValue: 1000, CurrentValue: 250})

		require.NoError(t, err)
		assert.NotEmpty(t, goal.ID)
		assert.Equal(t, 25.0, goal.Progress)
		assert.False(t, goal.Completed)
	})

	t.Run("Métrica inválida", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateGoal(ctx, "r1", &domain.Goal{Title: "x", TargetValue: 10, Metric: metricPtr("visitas")})

		assert.ErrorIs(t, err, business.ErrInvalidInput)
	})

	t.Run("Sem título", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateGoal(ctx, "r1", &domain.Goal{TargetValue: 10})

		assert.ErrorIs(t, err, business.ErrMissingData)
	})
}

func TestService_SyncGoals(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	goals := []*domain.Goal{
		{ID: "g1", RestaurantID: "r1", Title: "Receita", TargetValue: 1000, Metric: metricPtr(domain.MetricMonthlyRevenue)},
		{ID: "g2", RestaurantID: "r1", Title: "Manual", TargetValue: 10},
	}
	deps.goals.EXPECT().List(ctx, "r1").Return(goals, nil).Times(2)
	expectMetrics(ctx, deps, []*domain.CashFlowEntry{income(1500)})

	deps.goals.EXPECT().Update(ctx, goals[0]).Return(nil)
	deps.goals.EXPECT().Complete(ctx, "r1", "g1", fixedNow).Return(true, nil)
	deps.alerts.EXPECT().ExistsUnread(ctx, "r1", domain.AlertGoalCompleted, "g1").Return(false, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any())

	synced, err := service.SyncGoals(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, 1500.0, synced[0].CurrentValue)
	assert.True(t, synced[0].Completed)
	assert.Equal(t, fixedNow, *synced[0].CompletedAt)
}

func TestService_SyncGoals_ConcluidaPorOutraSincronizacao(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	goals := []*domain.Goal{
		{ID: "g1", RestaurantID: "r1", Title: "Receita", TargetValue: 1000, Metric: metricPtr(domain.MetricMonthlyRevenue)},
	}
	deps.goals.EXPECT().List(ctx, "r1").Return(goals, nil).Times(2)
	expectMetrics(ctx, deps, []*domain.CashFlowEntry{income(1500)})

	deps.goals.EXPECT().Update(ctx, goals[0]).Return(nil)
	deps.goals.EXPECT().Complete(ctx, "r1", "g1", fixedNow).Return(false, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any())

	synced, err := service.SyncGoals(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.True(t, synced[0].Completed)
}

func TestService_SyncGoals_MenorEMelhor(t *testing.T) {
	ctx := context.Background()
	march := &domain.CashFlowEntry{
		Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount: 50,
		Type:   domain.CashFlowExpense,
		Status: domain.CashFlowCompleted,
	}
	february := func(amount float64) *domain.CashFlowEntry {
		return &domain.CashFlowEntry{
			Date:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			Amount: amount,
			Type:   domain.CashFlowExpense,
			Status: domain.CashFlowCompleted,
		}
	}

	tests := []struct {
		name      string
		entries   []*domain.CashFlowEntry
		completed bool
	}{
		{
			name:      "Primeira despesa do mês não conclui",
			entries:   []*domain.CashFlowEntry{march},
			completed: false,
		},
		{
			name:      "Mês anterior fechou acima do teto",
			entries:   []*domain.CashFlowEntry{march, february(35000)},
			completed: false,
		},
		{
			name:      "Mês anterior fechou dentro do teto",
			entries:   []*domain.CashFlowEntry{march, february(15000)},
			completed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			goal := &domain.Goal{
				ID:           "g1",
				RestaurantID: "r1",
				Title:        "Despesas até R$ 20 mil",
				TargetValue:  20000,
				Metric:       metricPtr(domain.MetricMonthlyExpenses),
				CreatedAt:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			}
			deps.goals.EXPECT().List(ctx, "r1").Return([]*domain.Goal{goal}, nil).Times(2)
			expectMetrics(ctx, deps, tt.entries)
			deps.goals.EXPECT().Update(ctx, goal).Return(nil)
			if tt.completed {
				deps.goals.EXPECT().Complete(ctx, "r1", "g1", fixedNow).Return(true, nil)
				deps.alerts.EXPECT().ExistsUnread(ctx, "r1", domain.AlertGoalCompleted, "g1").Return(false, nil)
				deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			}
			deps.publisher.EXPECT().Publish(ctx, gomock.Any())

			synced, err := service.SyncGoals(ctx, "r1")

			require.NoError(t, err)
			require.Len(t, synced, 1)
			assert.Equal(t, 50.0, synced[0].CurrentValue)
			assert.Equal(t, tt.completed, synced[0].Completed)
		})
	}
}

func TestService_SyncGoals_WithoutLinkedGoals(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.goals.EXPECT().List(ctx, "r1").Return([]*domain.Goal{{ID: "g2", TargetValue: 10}}, nil)

	synced, err := service.SyncGoals(ctx, "r1")

	require.NoError(t, err)
	assert.Empty(t, synced)
}

func TestService_SyncAchievements(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.achievements.EXPECT().Seed(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, seeded []*domain.Achievement) error {
		assert.Len(t, seeded, len(catalogue))
		assert.Equal(t, "r1", seeded[0].RestaurantID)
		return nil
	})
	deps.goals.EXPECT().List(ctx, "r1").Return([]*domain.Goal{}, nil)
	expectMetrics(ctx, deps, []*domain.CashFlowEntry{income(1500)})

	deps.achievements.EXPECT().Unlock(ctx, "r1", "first_cash_entry", fixedNow).Return(true, nil)
	deps.alerts.EXPECT().ExistsUnread(ctx, "r1", domain.AlertAchievementUnlocked, "first_cash_entry").Return(false, nil)
	deps.alerts.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, event events.Event) {
		assert.Equal(t, events.AchievementUnlocked, event.Type)
	})

	unlocked, err := service.SyncAchievements(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "first_cash_entry", unlocked[0].Code)
	assert.Equal(t, 10, unlocked[0].Points)
}

func TestService_UpdateProgress_NegativeValue(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.UpdateProgress(context.Background(), "r1", "g1", -1)

	assert.ErrorIs(t, err, business.ErrInvalidInput)
}
