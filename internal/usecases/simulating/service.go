// Package simulating implementa os simuladores de preço e de cenários financeiros
package simulating

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting"
)

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Simulator interface {
	SimulatePrice(ctx context.Context, restaurantID string, request domain.PriceSimulationRequest) (*domain.PriceSimulationResult, error)
	SimulateFinancial(ctx context.Context, restaurantID string, request domain.FinancialSimulationRequest) (*domain.FinancialSimulationResult, error)
}

type Service struct {
	sheets   costing.SheetManager
	reporter reporting.Reporter
}

func NewService(sheets costing.SheetManager, reporter reporting.Reporter) Simulator {
	return &Service{
		sheets:   sheets,
		reporter: reporter,
	}
}

// SimulatePrice sugere preço = custo / (1 - (fixos + variáveis + margem)/100)
func (s *Service) SimulatePrice(ctx context.Context, restaurantID string, request domain.PriceSimulationRequest) (*domain.PriceSimulationResult, error) {
	if request.TechnicalSheetID != nil && *request.TechnicalSheetID != "" {
		sheet, err := s.sheets.Get(ctx, restaurantID, *request.TechnicalSheetID)
		if err != nil {
			return nil, err
		}
		request.Cost = sheet.CostPerPortion
	}

	return SuggestPrice(request)
}

// SuggestPrice faz o cálculo do simulador de preço sem acesso a dados
func SuggestPrice(request domain.PriceSimulationRequest) (*domain.PriceSimulationResult, error) {
	if request.Cost <= 0 {
		return nil, business.Invalid("custo deve ser maior que zero")
	}
	if request.FixedCostPercentage < 0 || request.VariableCostPercentage < 0 || request.DesiredMarginPercentage < 0 {
		return nil, business.Invalid("percentuais não podem ser negativos")
	}

	cost := decimal.NewFromFloat(request.Cost)
	fixed := decimal.NewFromFloat(request.FixedCostPercentage)
	variable := decimal.NewFromFloat(request.VariableCostPercentage)
	margin := decimal.NewFromFloat(request.DesiredMarginPercentage)

	denominator := decimal.NewFromInt(1).Sub(fixed.Add(variable).Add(margin).Div(hundred))
	if !denominator.IsPositive() {
		return nil, business.Rule("a soma de custos fixos, variáveis e margem deve ser menor que 100%")
	}

	price := cost.Div(denominator)
	result := &domain.PriceSimulationResult{
		Cost:               cost.Round(2).InexactFloat64(),
		SuggestedPrice:     price.Round(2).InexactFloat64(),
		MarkupFactor:       price.Div(cost).Round(2).InexactFloat64(),
		CMVPercentage:      cost.Div(price).Mul(hundred).Round(2).InexactFloat64(),
		ContributionMargin: contribution(price, cost, variable).Round(2).InexactFloat64(),
	}

	if request.CurrentPrice != nil && *request.CurrentPrice > 0 {
		current := decimal.NewFromFloat(*request.CurrentPrice)
		// margem efetiva = 1 - custo/preço - fixos - variáveis
		effective := decimal.NewFromInt(1).
			Sub(cost.Div(current)).
			Sub(fixed.Div(hundred)).
			Sub(variable.Div(hundred)).
			Mul(hundred).Round(2).InexactFloat64()
		cmv := cost.Div(current).Mul(hundred).Round(2).InexactFloat64()
		currentPrice := current.Round(2).InexactFloat64()

		result.CurrentPrice = &currentPrice
		result.CurrentMarginPercent = &effective
		result.CurrentCMVPercentage = &cmv
	}

	return result, nil
}

// contribution é o preço menos o custo e as despesas variáveis
func contribution(price, cost, variablePercentage decimal.Decimal) decimal.Decimal {
	return price.Sub(cost).Sub(price.Mul(variablePercentage).Div(hundred))
}

// SimulateFinancial projeta o resultado aplicando as variações do cenário sobre a base.
// Sem base informada, usa o DRE do mês corrente.
func (s *Service) SimulateFinancial(ctx context.Context, restaurantID string, request domain.FinancialSimulationRequest) (*domain.FinancialSimulationResult, error) {
	base := request.Base
	if base == nil {
		dre, err := s.reporter.GenerateDRE(ctx, restaurantID, bookkeeping.CurrentMonth())
		if err != nil {
			return nil, err
		}
		base = BaseFromDRE(dre)
	}

	return Project(*base, request)
}

// BaseFromDRE usa impostos e taxas como custo variável e as despesas operacionais como custo fixo
func BaseFromDRE(dre *domain.DRE) *domain.FinancialBase {
	revenue := decimal.NewFromFloat(dre.GrossRevenue)
	variable := decimal.Zero
	if revenue.IsPositive() {
		variable = decimal.NewFromFloat(dre.Taxes + dre.CardFees).Div(revenue).Mul(hundred)
	}

	return &domain.FinancialBase{
		Revenue:                dre.GrossRevenue,
		CMV:                    dre.CMV,
		FixedCosts:             dre.TotalOperating,
		VariableCostPercentage: variable.Round(2).InexactFloat64(),
	}
}

// Project calcula a base e o cenário projetado
func Project(base domain.FinancialBase, request domain.FinancialSimulationRequest) (*domain.FinancialSimulationResult, error) {
	if base.Revenue < 0 || base.CMV < 0 || base.FixedCosts < 0 || base.VariableCostPercentage < 0 {
		return nil, business.Invalid("valores base não podem ser negativos")
	}
	if request.RevenueChangePercentage < -100 || request.CMVChangePercentage < -100 || request.FixedCostChangePercent < -100 {
		return nil, business.Invalid("variação não pode ser menor que -100%")
	}

	scale := func(value, change float64) decimal.Decimal {
		return decimal.NewFromFloat(value).Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(change).Div(hundred)))
	}

	variable := decimal.NewFromFloat(base.VariableCostPercentage).Add(decimal.NewFromFloat(request.VariableCostChangePoints))
	if variable.IsNegative() {
		variable = decimal.Zero
	}

	current := projection(
		decimal.NewFromFloat(base.Revenue),
		decimal.NewFromFloat(base.CMV),
		decimal.NewFromFloat(base.FixedCosts),
		decimal.NewFromFloat(base.VariableCostPercentage),
	)
	projected := projection(
		scale(base.Revenue, request.RevenueChangePercentage),
		scale(base.CMV, request.CMVChangePercentage),
		scale(base.FixedCosts, request.FixedCostChangePercent),
		variable,
	)

	return &domain.FinancialSimulationResult{
		Base:         current,
		Projected:    projected,
		ProfitDelta:  decimal.NewFromFloat(projected.Profit).Sub(decimal.NewFromFloat(current.Profit)).Round(2).InexactFloat64(),
		RevenueDelta: decimal.NewFromFloat(projected.Revenue).Sub(decimal.NewFromFloat(current.Revenue)).Round(2).InexactFloat64(),
		MarginDelta:  decimal.NewFromFloat(projected.ProfitMargin).Sub(decimal.NewFromFloat(current.ProfitMargin)).Round(2).InexactFloat64(),
	}, nil
}

// projection calcula lucro, margem e ponto de equilíbrio. O ponto de equilíbrio
// é zero quando a margem de contribuição não é positiva.
func projection(revenue, cmv, fixed, variablePercentage decimal.Decimal) domain.FinancialProjection {
	variableCosts := revenue.Mul(variablePercentage).Div(hundred)
	profit := revenue.Sub(cmv).Sub(variableCosts).Sub(fixed)

	margin := decimal.Zero
	breakEven := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
		contributionRatio := revenue.Sub(cmv).Sub(variableCosts).Div(revenue)
		if contributionRatio.IsPositive() {
			breakEven = fixed.Div(contributionRatio)
		}
	}

	return domain.FinancialProjection{
		Revenue:          revenue.Round(2).InexactFloat64(),
		CMV:              cmv.Round(2).InexactFloat64(),
		VariableCosts:    variableCosts.Round(2).InexactFloat64(),
		FixedCosts:       fixed.Round(2).InexactFloat64(),
		Profit:           profit.Round(2).InexactFloat64(),
		ProfitMargin:     margin.Round(2).InexactFloat64(),
		BreakEvenRevenue: breakEven.Round(2).InexactFloat64(),
	}
}
