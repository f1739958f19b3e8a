package domain

import "time"

type MenuRankingResponse struct {
	Ranking     []MenuRankingItem `json:"ranking"`
	AverageCMV  float64           `json:"average_cmv_percentage"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type MenuRankingItem struct {
	MenuItemID    string  `json:"menu_item_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	UnitMargin    float64 `json:"unit_margin"`
	Margin        float64 `json:"margin"` // percentual sobre o preço
	CMVPercentage float64 `json:"cmv_percentage"`
	Position      int     `json:"position"`
	AboveAverage  bool    `json:"above_average"` // CMV acima da média do cardápio
}
