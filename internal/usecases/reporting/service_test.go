package reporting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

var march = domain.MonthPeriod(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

func cashEntry(t domain.CashFlowType, category, method string, amount float64) *domain.CashFlowEntry {
	return &domain.CashFlowEntry{
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:          t,
		Category:      category,
		PaymentMethod: method,
		Amount:        amount,
		Status:        domain.CashFlowCompleted,
	}
}

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{ID: "r1", Name: "Cantina São Jorge", TaxRate: 0.06, CardFeeRate: 0.03, TargetCMVPercentage: 35}
}

func sampleEntries() []*domain.CashFlowEntry {
	pending := cashEntry(domain.CashFlowIncome, "vendas", "pix", 1000)
	pending.Status = domain.CashFlowPending
	outside := cashEntry(domain.CashFlowIncome, "vendas", "pix", 700)
	outside.Date = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	return []*domain.CashFlowEntry{
		cashEntry(domain.CashFlowIncome, "vendas", "pix", 10000),
		cashEntry(domain.CashFlowIncome, "vendas", "Cartão Crédito", 5000),
		pending,
		outside,
		cashEntry(domain.CashFlowExpense, "Ingredientes", "", 4000),
		cashEntry(domain.CashFlowExpense, "Bebidas", "", 1000),
		cashEntry(domain.CashFlowExpense, "Salários", "", 3000),
		cashEntry(domain.CashFlowExpense, "Aluguel", "", 2000),
		cashEntry(domain.CashFlowExpense, "Energia elétrica", "", 500),
		cashEntry(domain.CashFlowExpense, "Publicidade", "", 300),
		cashEntry(domain.CashFlowExpense, "Contabilidade", "", 200),
	}
}

func TestBuildDRE(t *testing.T) {
	dre := BuildDRE(testRestaurant(), march, sampleEntries())

	assert.Equal(t, 15000.0, dre.GrossRevenue)
	assert.Equal(t, 10500.0, dre.FoodSales)
	assert.Equal(t, 4500.0, dre.BeverageSales)
	assert.Equal(t, 900.0, dre.Taxes)
	assert.Equal(t, 150.0, dre.CardFees)
	assert.Equal(t, 13950.0, dre.NetRevenue)
	assert.Equal(t, 5000.0, dre.CMV)
	assert.Equal(t, 8950.0, dre.GrossProfit)
	assert.Equal(t, 6000.0, dre.TotalOperating)
	assert.Equal(t, 2950.0, dre.OperatingResult)
	assert.Equal(t, 2950.0, dre.NetResult)
	assert.Equal(t, 64.16, dre.Margins.GrossMargin)
	assert.Equal(t, 21.15, dre.Margins.OperatingMargin)
	assert.Equal(t, 35.84, dre.Margins.CMVPercentage)

	groups := map[string]float64{}
	for _, group := range dre.OperatingExpenses {
		groups[group.Group] = group.Total
	}
	assert.Equal(t, map[string]float64{
		GroupPersonnel:      3000,
		GroupOccupancy:      2000,
		GroupUtilities:      500,
		GroupMarketing:      300,
		GroupAdministrative: 200,
	}, groups)
}

func TestBuildDRE_NoRevenueHasNoNaN(t *testing.T) {
	dre := BuildDRE(testRestaurant(), march, []*domain.CashFlowEntry{
		cashEntry(domain.CashFlowExpense, "aluguel", "", 100),
	})

	assert.Zero(t, dre.NetRevenue)
	assert.Zero(t, dre.Margins.GrossMargin)
	assert.Zero(t, dre.Margins.NetMargin)
	assert.Equal(t, -100.0, dre.NetResult)
}

func TestExpenseGroup(t *testing.T) {
	assert.Equal(t, GroupPersonnel, ExpenseGroup("Encargos sociais"))
	assert.Equal(t, GroupPersonnel, ExpenseGroup("folha-de-pagamento"))
	assert.Equal(t, GroupUtilities, ExpenseGroup("Água"))
	assert.Equal(t, GroupAdministrative, ExpenseGroup("Gastos gerais"))
	assert.True(t, IsCMVCategory(" INSUMOS "))
	assert.False(t, IsCMVCategory("insumo de limpeza"))
}

func TestClassifyCMV(t *testing.T) {
	assert.Equal(t, domain.CMVHealthy, ClassifyCMV(35, 35))
	assert.Equal(t, domain.CMVAttention, ClassifyCMV(40, 35))
	assert.Equal(t, domain.CMVCritical, ClassifyCMV(40.01, 35))
}

func TestService_GenerateCMV(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	restaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	cashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)
	inventoryRepo := mocks.NewMockInventoryRepository(ctrl)
	menuItemRepo := mocks.NewMockMenuItemRepository(ctrl)
	sheetRepo := mocks.NewMockTechnicalSheetRepository(ctrl)
	service := NewService(restaurantRepo, cashFlowRepo, inventoryRepo, menuItemRepo, sheetRepo)
	sheetID := "s1"
	initial := 2000.0

	restaurantRepo.EXPECT().GetByID(ctx, "r1").Return(testRestaurant(), nil)
	cashFlowRepo.EXPECT().List(ctx, "r1", gomock.Any()).Return([]*domain.CashFlowEntry{
		cashEntry(domain.CashFlowIncome, "vendas", "pix", 10000),
		cashEntry(domain.CashFlowExpense, "ingredientes", "", 3000),
		cashEntry(domain.CashFlowExpense, "aluguel", "", 1500),
	}, nil)
	inventoryRepo.EXPECT().List(ctx, "r1").Return([]*domain.InventoryItem{{Quantity: 10, UnitCost: 50}}, nil)
	menuItemRepo.EXPECT().List(ctx, "r1").Return([]*domain.MenuItem{
		{ID: "m1", Name: "Lasanha", Price: 40, Cost: 99, TechnicalSheetID: &sheetID},
		{ID: "m2", Name: "Suco", Price: 10, Cost: 2},
	}, nil)
	sheetRepo.EXPECT().List(ctx, "r1").Return([]*domain.TechnicalSheet{{
		ID:          "s1",
		Yield:       1,
		Ingredients: []domain.TechnicalSheetIngredient{{Name: "massa", Quantity: 1, UnitCost: 12, CorrectionFactor: 1}},
	}}, nil)

	report, err := service.GenerateCMV(ctx, "r1", domain.CMVRequest{Period: march, InitialInventory: &initial})

	require.NoError(t, err)
	assert.Equal(t, 2000.0, report.InitialInventory)
	assert.Equal(t, 3000.0, report.Purchases)
	assert.Equal(t, 500.0, report.FinalInventory)
	assert.Equal(t, 4500.0, report.CMV)
	assert.Equal(t, 45.0, report.CMVPercentage)
	assert.Equal(t, domain.CMVCritical, report.Status)
	require.Len(t, report.MenuItems, 2)
	assert.Equal(t, "m1", report.MenuItems[0].MenuItemID)
	assert.Equal(t, 12.0, report.MenuItems[0].Cost)
	assert.Equal(t, 30.0, report.MenuItems[0].CMVPercentage)
	assert.Equal(t, 20.0, report.MenuItems[1].CMVPercentage)
}

func TestService_GenerateDRE_UnknownRestaurant(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	restaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	service := &Service{restaurantRepo: restaurantRepo}

	restaurantRepo.EXPECT().GetByID(ctx, "r9").Return(nil, nil)

	_, err := service.GenerateDRE(ctx, "r9", march)

	assert.ErrorIs(t, err, business.ErrNotFound)
}

func TestRenderDREPDF(t *testing.T) {
	dre := BuildDRE(testRestaurant(), march, sampleEntries())
	var buf bytes.Buffer

	require.NoError(t, RenderDREPDF(testRestaurant(), dre, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, "dre_2024-03-01_2024-03-31.pdf", PDFFileName(march))
}
