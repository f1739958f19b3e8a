package simulating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	costingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/costing/mocks"
	reportingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestSuggestPrice(t *testing.T) {
	current := 25.0

	result, err := SuggestPrice(domain.PriceSimulationRequest{
		Cost:                    10,
		FixedCostPercentage:     20,
		VariableCostPercentage:  10,
		DesiredMarginPercentage: 20,
		CurrentPrice:            &current,
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, result.SuggestedPrice)
	assert.Equal(t, 2.0, result.MarkupFactor)
	assert.Equal(t, 50.0, result.CMVPercentage)
	assert.Equal(t, 8.0, result.ContributionMargin)
	assert.Equal(t, 30.0, *result.CurrentMarginPercent)
	assert.Equal(t, 40.0, *result.CurrentCMVPercentage)
}

func TestSuggestPrice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		request domain.PriceSimulationRequest
		wantErr error
	}{
		{
			name:    "Percentuais somam 100",
			request: domain.PriceSimulationRequest{Cost: 10, FixedCostPercentage: 50, VariableCostPercentage: 30, DesiredMarginPercentage: 20},
			wantErr: business.ErrRuleViolation,
		},
		{
			name:    "Percentuais acima de 100",
			request: domain.PriceSimulationRequest{Cost: 10, FixedCostPercentage: 90, DesiredMarginPercentage: 20},
			wantErr: business.ErrRuleViolation,
		},
		{
			name:    "Custo zero",
			request: domain.PriceSimulationRequest{Cost: 0, DesiredMarginPercentage: 20},
			wantErr: business.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SuggestPrice(tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProject(t *testing.T) {
	base := domain.FinancialBase{Revenue: 100000, CMV: 35000, FixedCosts: 40000, VariableCostPercentage: 10}

	result, err := Project(base, domain.FinancialSimulationRequest{RevenueChangePercentage: 10, CMVChangePercentage: 10})

	require.NoError(t, err)
	assert.Equal(t, 15000.0, result.Base.Profit)
	assert.Equal(t, 15.0, result.Base.ProfitMargin)
	assert.Equal(t, 72727.27, result.Base.BreakEvenRevenue)
	assert.Equal(t, 110000.0, result.Projected.Revenue)
	assert.Equal(t, 38500.0, result.Projected.CMV)
	assert.Equal(t, 11000.0, result.Projected.VariableCosts)
	assert.Equal(t, 20500.0, result.Projected.Profit)
	assert.Equal(t, 18.64, result.Projected.ProfitMargin)
	assert.Equal(t, 5500.0, result.ProfitDelta)
	assert.Equal(t, 10000.0, result.RevenueDelta)
	assert.Equal(t, 3.64, result.MarginDelta)
}

func TestProject_ZeroRevenueIsGuarded(t *testing.T) {
	result, err := Project(domain.FinancialBase{FixedCosts: 1000}, domain.FinancialSimulationRequest{})

	require.NoError(t, err)
	assert.Zero(t, result.Base.ProfitMargin)
	assert.Zero(t, result.Base.BreakEvenRevenue)
	assert.Equal(t, -1000.0, result.Base.Profit)
}

func TestService_SimulatePrice_FromSheet(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sheets := costingmocks.NewMockSheetManager(ctrl)
	service := NewService(sheets, nil)
	sheetID := "s1"

	sheets.EXPECT().Get(ctx, "r1", "s1").Return(&domain.TechnicalSheet{ID: "s1", CostPerPortion: 12}, nil)

	result, err := service.SimulatePrice(ctx, "r1", domain.PriceSimulationRequest{
		TechnicalSheetID:        &sheetID,
		DesiredMarginPercentage: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.0, result.Cost)
	assert.Equal(t, 20.0, result.SuggestedPrice)
}

func TestService_SimulateFinancial_UsesCurrentDRE(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	service := NewService(nil, reporter)

	reporter.EXPECT().GenerateDRE(ctx, "r1", gomock.Any()).Return(&domain.DRE{
		GrossRevenue:   20000,
		Taxes:          1200,
		CardFees:       300,
		CMV:            7000,
		TotalOperating: 8000,
	}, nil)

	result, err := service.SimulateFinancial(ctx, "r1", domain.FinancialSimulationRequest{FixedCostChangePercent: -10})

	require.NoError(t, err)
	assert.Equal(t, 1500.0, result.Base.VariableCosts)
	assert.Equal(t, 3500.0, result.Base.Profit)
	assert.Equal(t, 7200.0, result.Projected.FixedCosts)
	assert.Equal(t, 800.0, result.ProfitDelta)
}
