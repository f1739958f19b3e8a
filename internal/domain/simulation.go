package domain

type PriceSimulationRequest struct {
	Cost                    float64  `json:"cost"`
	TechnicalSheetID        *string  `json:"technical_sheet_id"`
	FixedCostPercentage     float64  `json:"fixed_cost_percentage"`
	VariableCostPercentage  float64  `json:"variable_cost_percentage"`
	DesiredMarginPercentage float64  `json:"desired_margin_percentage"`
	CurrentPrice            *float64 `json:"current_price"`
}

type PriceSimulationResult struct {
	Cost                 float64  `json:"cost"`
	SuggestedPrice       float64  `json:"suggested_price"`
	MarkupFactor         float64  `json:"markup_factor"`
	CMVPercentage        float64  `json:"cmv_percentage"`
	ContributionMargin   float64  `json:"contribution_margin"`
	CurrentPrice         *float64 `json:"current_price,omitempty"`
	CurrentMarginPercent *float64 `json:"current_margin_percentage,omitempty"`
	CurrentCMVPercentage *float64 `json:"current_cmv_percentage,omitempty"`
}

type FinancialBase struct {
	Revenue                float64 `json:"revenue"`
	CMV                    float64 `json:"cmv"`
	FixedCosts             float64 `json:"fixed_costs"`
	VariableCostPercentage float64 `json:"variable_cost_percentage"`
}

type FinancialSimulationRequest struct {
	Base                     *FinancialBase `json:"base"`
	RevenueChangePercentage  float64        `json:"revenue_change_percentage"`
	CMVChangePercentage      float64        `json:"cmv_change_percentage"`
	FixedCostChangePercent   float64        `json:"fixed_cost_change_percentage"`
	VariableCostChangePoints float64        `json:"variable_cost_change_points"`
}

type FinancialProjection struct {
	Revenue          float64 `json:"revenue"`
	CMV              float64 `json:"cmv"`
	VariableCosts    float64 `json:"variable_costs"`
	FixedCosts       float64 `json:"fixed_costs"`
	Profit           float64 `json:"profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	BreakEvenRevenue float64 `json:"break_even_revenue"`
}

type FinancialSimulationResult struct {
	Base         FinancialProjection `json:"base"`
	Projected    FinancialProjection `json:"projected"`
	ProfitDelta  float64             `json:"profit_delta"`
	RevenueDelta float64             `json:"revenue_delta"`
	MarginDelta  float64             `json:"margin_delta"`
}
