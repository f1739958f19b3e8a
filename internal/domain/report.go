package domain

import "time"

// DRE é o Demonstrativo de Resultado do Exercício de um período
type DRE struct {
	RestaurantID      string         `json:"restaurant_id"`
	Period            Period         `json:"period"`
	GrossRevenue      float64        `json:"gross_revenue"`
	FoodSales         float64        `json:"food_sales"`
	BeverageSales     float64        `json:"beverage_sales"`
	Taxes             float64        `json:"taxes"`
	CardFees          float64        `json:"card_fees"`
	NetRevenue        float64        `json:"net_revenue"`
	CMV               float64        `json:"cmv"`
	GrossProfit       float64        `json:"gross_profit"`
	OperatingExpenses []ExpenseGroup `json:"operating_expenses"`
	TotalOperating    float64        `json:"total_operating_expenses"`
	OperatingResult   float64        `json:"operating_result"`
	NetResult         float64        `json:"net_result"`
	Margins           DREMargins     `json:"margins"`
	GeneratedAt       time.Time      `json:"generated_at"`
}

type ExpenseGroup struct {
	Group string  `json:"group"`
	Total float64 `json:"total"`
}

type DREMargins struct {
	GrossMargin     float64 `json:"gross_margin"`
	OperatingMargin float64 `json:"operating_margin"`
	NetMargin       float64 `json:"net_margin"`
	CMVPercentage   float64 `json:"cmv_percentage"`
}

type CMVStatus string

const (
	CMVHealthy   CMVStatus = "healthy"
	CMVAttention CMVStatus = "attention"
	CMVCritical  CMVStatus = "critical"
)

type CMVRequest struct {
	Period           Period
	InitialInventory *float64
	FinalInventory   *float64
}

type CMVReport struct {
	RestaurantID     string        `json:"restaurant_id"`
	Period           Period        `json:"period"`
	InitialInventory float64       `json:"initial_inventory"`
	Purchases        float64       `json:"purchases"`
	FinalInventory   float64       `json:"final_inventory"`
	CMV              float64       `json:"cmv"`
	Revenue          float64       `json:"revenue"`
	CMVPercentage    float64       `json:"cmv_percentage"`
	TargetPercentage float64       `json:"target_percentage"`
	Status           CMVStatus     `json:"status"`
	MenuItems        []MenuItemCMV `json:"menu_items"`
	GeneratedAt      time.Time     `json:"generated_at"`
}

type MenuItemCMV struct {
	MenuItemID    string  `json:"menu_item_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	CMVPercentage float64 `json:"cmv_percentage"`
}
