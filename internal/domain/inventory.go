package domain

import "time"

type InventoryItem struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Unit         string     `json:"unit"`
	Quantity     float64    `json:"quantity"`
	MinQuantity  float64    `json:"min_quantity"`
	UnitCost     float64    `json:"unit_cost"`
	Supplier     *string    `json:"supplier"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsLowStock indica se o item está no nível mínimo ou abaixo
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// TotalValue retorna o valor do item em estoque
func (i *InventoryItem) TotalValue() float64 {
	return i.Quantity * i.UnitCost
}

type InventoryValuation struct {
	TotalValue    float64            `json:"total_value"`
	ItemsCount    int                `json:"items_count"`
	LowStockCount int                `json:"low_stock_count"`
	ByCategory    map[string]float64 `json:"by_category"`
}

type StockAdjustment struct {
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason"`
}
