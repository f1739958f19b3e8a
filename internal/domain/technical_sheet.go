package domain

import "time"

const DefaultMarkupFactor = 3.0

// TechnicalSheet é a ficha técnica de uma receita
type TechnicalSheet struct {
	ID              string                     `json:"id"`
	RestaurantID    string                     `json:"restaurant_id"`
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	Yield           float64                    `json:"yield"`
	PreparationTime int                        `json:"preparation_time"`
	Instructions    string                     `json:"instructions"`
	MarkupFactor    *float64                   `json:"markup_factor"`
	SellingPrice    *float64                   `json:"selling_price"`
	Ingredients     []TechnicalSheetIngredient `json:"ingredients"`
	TotalCost       float64                    `json:"total_cost"`
	CostPerPortion  float64                    `json:"cost_per_portion"`
	SuggestedPrice  float64                    `json:"suggested_price"`
	CMVPercentage   float64                    `json:"cmv_percentage"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

type TechnicalSheetIngredient struct {
	ID               string  `json:"id"`
	InventoryItemID  *string `json:"inventory_item_id"`
	Name             string  `json:"name"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	UnitCost         float64 `json:"unit_cost"`
	CorrectionFactor float64 `json:"correction_factor"`
	TotalCost        float64 `json:"total_cost"`
}
