package importing

import (
	"context"
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hosteddomain "github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/domain"
	hostedmocks "github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/mocks"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	eventmocks "github.com/vfg2006/restaurant-manager-api/internal/events/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	restaurants  *mocks.MockRestaurantRepository
	users        *mocks.MockUserRepository
	cashFlow     *mocks.MockCashFlowRepository
	inventory    *mocks.MockInventoryRepository
	sheets       *mocks.MockTechnicalSheetRepository
	menu         *mocks.MockMenuItemRepository
	promotions   *mocks.MockPromotionRepository
	goals        *mocks.MockGoalRepository
	achievements *mocks.MockAchievementRepository
	alerts       *mocks.MockSystemAlertRepository
	hosted       *hostedmocks.MockHostedIntegrator
	publisher    *eventmocks.MockPublisher
}

func newTestService(t *testing.T) (Importer, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		restaurants:  mocks.NewMockRestaurantRepository(ctrl),
		users:        mocks.NewMockUserRepository(ctrl),
		cashFlow:     mocks.NewMockCashFlowRepository(ctrl),
		inventory:    mocks.NewMockInventoryRepository(ctrl),
		sheets:       mocks.NewMockTechnicalSheetRepository(ctrl),
		menu:         mocks.NewMockMenuItemRepository(ctrl),
		promotions:   mocks.NewMockPromotionRepository(ctrl),
		goals:        mocks.NewMockGoalRepository(ctrl),
		achievements: mocks.NewMockAchievementRepository(ctrl),
		alerts:       mocks.NewMockSystemAlertRepository(ctrl),
		hosted:       hostedmocks.NewMockHostedIntegrator(ctrl),
		publisher:    eventmocks.NewMockPublisher(ctrl),
	}

	service := NewService(Repositories{
		Restaurants:  deps.restaurants,
		Users:        deps.users,
		CashFlow:     deps.cashFlow,
		Inventory:    deps.inventory,
		Sheets:       deps.sheets,
		Menu:         deps.menu,
		Promotions:   deps.promotions,
		Goals:        deps.goals,
		Achievements: deps.achievements,
		Alerts:       deps.alerts,
	}, deps.hosted, deps.publisher)

	return service, deps
}

func collectEvents(deps testDeps, times int) *[]events.Type {
	published := []events.Type{}
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(times).Do(func(_ context.Context, event events.Event) {
		published = append(published, event.Type)
	})
	return &published
}

func TestImportLocalStorage(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	dump := map[string]jsoniter.RawMessage{
		KeyCashFlow: jsoniter.RawMessage(`"[{\"id\":1700000000000,\"date\":\"2026-03-10\",\"description\":\"Venda balcão\",\"amount\":\"150,50\",\"type\":\"receita\",\"paymentMethod\":\"pix\"},{\"id\":\"c2\",\"date\":\"2026-03-11\",\"description\":\"Sem valor\",\"amount\":0,\"type\":\"expense\"}]"`),
		KeyInventoryItems:  jsoniter.RawMessage(`[{"id":"i1","name":"Farinha","unit":"kg","currentStock":10,"minStock":2,"cost":"5.5"}]`),
		KeyTechnicalSheets: jsoniter.RawMessage(`[{"id":"s1","name":"Pão","servings":10,"ingredients":[{"inventoryItemId":"i1","name":"Farinha","quantity":2,"unitCost":1}]}]`),
		KeyMenuItems:       jsoniter.RawMessage(`[{"id":"m1","name":"Pão","price":5,"technicalSheetId":"s1"}]`),
		KeyPromotions:      jsoniter.RawMessage(`"isto não é json"`),
		KeyGoals:           jsoniter.RawMessage(`[{"id":"g1","title":"Faturar 10k","targetValue":10000,"metric":"monthly_revenue"},{"id":"g2","title":"Sem alvo","targetValue":0}]`),
		KeyFinancialData:   jsoniter.RawMessage(`{"revenue":1000}`),
	}

	deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1", Name: "Cantina"}, nil)
	deps.inventory.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, items []*domain.InventoryItem) (*repository.UpsertResult, error) {
		require.Len(t, items, 1)
		assert.Equal(t, 10.0, items[0].Quantity)
		assert.Equal(t, 2.0, items[0].MinQuantity)
		assert.Equal(t, 5.5, items[0].UnitCost)
		assert.Equal(t, "r1", items[0].RestaurantID)
		return &repository.UpsertResult{Written: len(items)}, nil
	})
	deps.sheets.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, sheets []*domain.TechnicalSheet) (*repository.UpsertResult, error) {
		require.Len(t, sheets, 1)
		assert.Equal(t, 11.0, sheets[0].TotalCost)
		assert.Equal(t, 1.1, sheets[0].CostPerPortion)
		return &repository.UpsertResult{Written: len(sheets)}, nil
	})
	deps.menu.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, items []*domain.MenuItem) (*repository.UpsertResult, error) {
		require.Len(t, items, 1)
		assert.Equal(t, 1.1, items[0].Cost)
		assert.True(t, items[0].Available)
		return &repository.UpsertResult{Written: len(items)}, nil
	})
	deps.cashFlow.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entries []*domain.CashFlowEntry) (*repository.UpsertResult, error) {
		require.Len(t, entries, 1)
		assert.Equal(t, "1700000000000", entries[0].ID)
		assert.Equal(t, 150.5, entries[0].Amount)
		assert.Equal(t, domain.CashFlowIncome, entries[0].Type)
		assert.Equal(t, domain.CashFlowCompleted, entries[0].Status)
		return &repository.UpsertResult{Written: len(entries)}, nil
	})
	deps.goals.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, goals []*domain.Goal) (*repository.UpsertResult, error) {
		require.Len(t, goals, 1)
		require.NotNil(t, goals[0].Metric)
		assert.Equal(t, domain.MetricMonthlyRevenue, *goals[0].Metric)
		return &repository.UpsertResult{Written: len(goals)}, nil
	})
	published := collectEvents(deps, 3)

	report, err := service.ImportLocalStorage(ctx, "r1", dump)
	require.NoError(t, err)

	assert.Equal(t, domain.ImportSourceLocalStorage, report.Source)
	assert.Equal(t, map[string]int{
		KeyInventoryItems:  1,
		KeyTechnicalSheets: 1,
		KeyMenuItems:       1,
		KeyCashFlow:        1,
		KeyGoals:           1,
	}, report.Imported)
	assert.Equal(t, []string{KeyFinancialData}, report.Ignored)

	require.Len(t, report.Skipped, 3)
	skipped := map[string]domain.ImportIssue{}
	for _, issue := range report.Skipped {
		skipped[issue.Key] = issue
	}
	assert.Nil(t, skipped[KeyPromotions].Index)
	require.NotNil(t, skipped[KeyCashFlow].Index)
	assert.Equal(t, 1, *skipped[KeyCashFlow].Index)
	require.NotNil(t, skipped[KeyGoals].Index)
	assert.Equal(t, 1, *skipped[KeyGoals].Index)

	assert.ElementsMatch(t, []events.Type{events.FinancialDataUpdated, events.InventoryUpdated, events.GoalsUpdated}, *published)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestImportLocalStorage_DadosDoRestaurante(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	dump := map[string]jsoniter.RawMessage{
		KeyRestaurantData: jsoniter.RawMessage(`{"name":"Cantina Nova","cnpj":"12.345.678/0001-90","taxRate":"0.08"}`),
	}

	deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1", Name: "Cantina"}, nil)
	deps.restaurants.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, restaurant *domain.Restaurant) error {
		assert.Equal(t, "Cantina Nova", restaurant.Name)
		require.NotNil(t, restaurant.Document)
		assert.Equal(t, "12.345.678/0001-90", *restaurant.Document)
		assert.Equal(t, 0.08, restaurant.TaxRate)
		assert.Equal(t, domain.DefaultCardFeeRate, restaurant.CardFeeRate)
		return nil
	})

	report, err := service.ImportLocalStorage(ctx, "r1", dump)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported[KeyRestaurantData])
	assert.Empty(t, report.Skipped)
}

func TestImportLocalStorage_IdDeOutroRestaurante(t *testing.T) {
	ctx := context.Background()
	dump := map[string]jsoniter.RawMessage{
		KeyInventoryItems: jsoniter.RawMessage(`[{"id":"i1","name":"Farinha","quantity":1},{"id":"i2","name":"Açúcar","quantity":3}]`),
	}

	tests := []struct {
		name      string
		result    *repository.UpsertResult
		imported  int
		conflicts []string
		events    int
	}{
		{
			name:      "Parte do lote pertence a outro restaurante",
			result:    &repository.UpsertResult{Written: 1, Conflicts: []string{"i2"}},
			imported:  1,
			conflicts: []string{"i2"},
			events:    1,
		},
		{
			name:      "Lote inteiro pertence a outro restaurante",
			result:    &repository.UpsertResult{Conflicts: []string{"i1", "i2"}},
			imported:  0,
			conflicts: []string{"i1", "i2"},
			events:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
			deps.inventory.EXPECT().Upsert(ctx, gomock.Any()).Return(tt.result, nil)
			published := collectEvents(deps, tt.events)

			report, err := service.ImportLocalStorage(ctx, "r1", dump)
			require.NoError(t, err)

			assert.Equal(t, tt.imported, report.Imported[KeyInventoryItems])
			require.Len(t, report.Skipped, len(tt.conflicts))
			for i, id := range tt.conflicts {
				assert.Equal(t, KeyInventoryItems, report.Skipped[i].Key)
				assert.Nil(t, report.Skipped[i].Index)
				assert.Contains(t, report.Skipped[i].Reason, id)
			}
			assert.Len(t, *published, tt.events)
		})
	}
}

func TestImportLocalStorage_Erros(t *testing.T) {
	ctx := context.Background()
	inventoryDump := map[string]jsoniter.RawMessage{
		KeyInventoryItems: jsoniter.RawMessage(`[{"id":"i1","name":"Farinha","quantity":1}]`),
	}

	tests := []struct {
		name     string
		dump     map[string]jsoniter.RawMessage
		setup    func(deps testDeps)
		expected error
	}{
		{
			name:     "dump vazio",
			dump:     map[string]jsoniter.RawMessage{},
			setup:    func(deps testDeps) {},
			expected: business.ErrMissingData,
		},
		{
			name: "restaurante inexistente",
			dump: inventoryDump,
			setup: func(deps testDeps) {
				deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(nil, nil)
			},
			expected: business.ErrNotFound,
		},
		{
			name: "falha ao gravar estoque",
			dump: inventoryDump,
			setup: func(deps testDeps) {
				deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
				deps.inventory.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
			expected: business.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			tt.setup(deps)

			report, err := service.ImportLocalStorage(ctx, "r1", tt.dump)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestImportHosted(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	fullName := "Maria da Silva"
	category := "vendas"
	snapshot := &hosteddomain.Snapshot{
		Restaurant: &hosteddomain.RestaurantRow{ID: "r1", Name: "Cantina Hospedada"},
		Profiles: []hosteddomain.ProfileRow{
			{ID: "uuid-1", FullName: &fullName, Email: "Maria@Cantina.com"},
			{ID: "uuid-2", Email: ""},
		},
		Members: []hosteddomain.RestaurantMemberRow{
			{RestaurantID: "r1", UserID: "uuid-1", Role: "owner"},
			{RestaurantID: "r1", UserID: "uuid-9", Role: "staff"},
		},
		CashFlow: []hosteddomain.CashFlowRow{
			{ID: "c1", Date: "2026-03-10", Description: "Almoço", Amount: 320, Type: "income", Category: &category},
			{ID: "c2", Date: "", Description: "Sem data", Amount: 10, Type: "expense"},
		},
		Recipes: []hosteddomain.RecipeRow{
			{ID: "rec1", RestaurantID: "r1", Name: "Molho", Yield: 4},
		},
		RecipeIngredients: []hosteddomain.RecipeIngredientRow{
			{ID: "ing1", RecipeID: "rec1", Name: "Tomate", Quantity: 2, Unit: "kg", UnitCost: 6},
		},
	}

	deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1", Name: "Cantina"}, nil)
	deps.hosted.EXPECT().Snapshot(ctx, "r1").Return(snapshot, nil)
	deps.users.EXPECT().UpsertByEmail(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (int, error) {
		assert.Equal(t, "maria@cantina.com", user.Email)
		assert.Equal(t, "Maria", user.Name)
		assert.Equal(t, "da Silva", user.Lastname)
		assert.Empty(t, user.PasswordHash)
		return 42, nil
	})
	deps.restaurants.EXPECT().AddMember(ctx, &domain.RestaurantMember{RestaurantID: "r1", UserID: 42, Role: domain.RoleOwner}).Return(nil)
	deps.restaurants.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	deps.sheets.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, sheets []*domain.TechnicalSheet) (*repository.UpsertResult, error) {
		require.Len(t, sheets, 1)
		assert.Equal(t, 12.0, sheets[0].TotalCost)
		assert.Equal(t, 3.0, sheets[0].CostPerPortion)
		return &repository.UpsertResult{Written: 1}, nil
	})
	deps.cashFlow.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entries []*domain.CashFlowEntry) (*repository.UpsertResult, error) {
		require.Len(t, entries, 1)
		assert.Equal(t, "vendas", entries[0].Category)
		return &repository.UpsertResult{Written: 1}, nil
	})
	published := collectEvents(deps, 1)

	report, err := service.ImportHosted(ctx, "r1")
	require.NoError(t, err)

	assert.Equal(t, domain.ImportSourceHosted, report.Source)
	assert.Equal(t, 1, report.Imported[hosteddomain.TableProfiles])
	assert.Equal(t, 1, report.Imported[hosteddomain.TableRestaurantMembers])
	assert.Equal(t, 1, report.Imported[hosteddomain.TableRestaurants])
	assert.Equal(t, 1, report.Imported[hosteddomain.TableRecipes])
	assert.Equal(t, 1, report.Imported[hosteddomain.TableCashFlow])
	assert.Len(t, report.Skipped, 3)
	assert.Equal(t, []events.Type{events.FinancialDataUpdated}, *published)
}

func TestImportHosted_FalhaNoBackend(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.restaurants.EXPECT().GetByID(ctx, "r1").Return(&domain.Restaurant{ID: "r1"}, nil)
	deps.hosted.EXPECT().Snapshot(ctx, "r1").Return(nil, errors.New("timeout"))

	report, err := service.ImportHosted(ctx, "r1")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, business.ErrExternalService)
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "lista direta", raw: `[1,2]`, expected: `[1,2]`},
		{name: "texto com JSON", raw: `"[{\"a\":1}]"`, expected: `[{"a":1}]`},
		{name: "espaços ao redor", raw: "  {\"a\":1}\n", expected: `{"a":1}`},
		{name: "vazio", raw: "  ", wantErr: true},
		{name: "JSON quebrado", raw: `[{"a":`, wantErr: true},
		{name: "texto sem JSON", raw: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := unwrap(jsoniter.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(payload))
		})
	}
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{raw: `12.5`, expected: 12.5},
		{raw: `"12,50"`, expected: 12.5},
		{raw: `""`, expected: 0},
		{raw: `null`, expected: 0},
		{raw: `"doze"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var value flexFloat
			err := json.Unmarshal([]byte(tt.raw), &value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, float64(value))
		})
	}
}
