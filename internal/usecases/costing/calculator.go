package costing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
)

var hundred = decimal.NewFromInt(100)

// Compute preenche os custos derivados da ficha técnica. Quando inventory
// é informado, o custo unitário dos ingredientes vinculados é atualizado
// com o custo atual do estoque.
func Compute(sheet *domain.TechnicalSheet, inventory map[string]*domain.InventoryItem) error {
	if sheet.Yield <= 0 {
		return business.Rule("rendimento deve ser maior que zero")
	}

	total := decimal.Zero
	for i := range sheet.Ingredients {
		ingredient := &sheet.Ingredients[i]
		if ingredient.InventoryItemID != nil {
			if item, ok := inventory[*ingredient.InventoryItemID]; ok {
				ingredient.UnitCost = item.UnitCost
			}
		}
		if ingredient.CorrectionFactor <= 0 {
			ingredient.CorrectionFactor = 1
		}

		cost := decimal.NewFromFloat(ingredient.Quantity).
			Mul(decimal.NewFromFloat(ingredient.CorrectionFactor)).
			Mul(decimal.NewFromFloat(ingredient.UnitCost))
		ingredient.TotalCost = cost.Round(2).InexactFloat64()
		total = total.Add(cost)
	}

	perPortion := total.Div(decimal.NewFromFloat(sheet.Yield))

	markup := decimal.NewFromFloat(domain.DefaultMarkupFactor)
	if sheet.MarkupFactor != nil && *sheet.MarkupFactor > 0 {
		markup = decimal.NewFromFloat(*sheet.MarkupFactor)
	}
	suggested := perPortion.Mul(markup)

	price := suggested
	if sheet.SellingPrice != nil && *sheet.SellingPrice > 0 {
		price = decimal.NewFromFloat(*sheet.SellingPrice)
	}

	sheet.TotalCost = total.Round(2).InexactFloat64()
	sheet.CostPerPortion = perPortion.Round(2).InexactFloat64()
	sheet.SuggestedPrice = suggested.Round(2).InexactFloat64()
	sheet.CMVPercentage = 0
	if price.IsPositive() {
		sheet.CMVPercentage = perPortion.Div(price).Mul(hundred).Round(2).InexactFloat64()
	}

	return nil
}
