package domain

type GoalsProgress struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	AverageProgress float64 `json:"average_progress"`
}

type DashboardOverview struct {
	RestaurantID     string               `json:"restaurant_id"`
	CashFlow         *CashFlowSummary     `json:"cash_flow"`
	Payments         *PaymentSummary      `json:"payments"`
	LowStockCount    int                  `json:"low_stock_count"`
	InventoryValue   float64              `json:"inventory_value"`
	ActivePromotions int                  `json:"active_promotions"`
	Goals            GoalsProgress        `json:"goals"`
	Gamification     *GamificationProfile `json:"gamification"`
	UnreadAlerts     int                  `json:"unread_alerts"`
	RecentEntries    []*CashFlowEntry     `json:"recent_entries"`
}
